// Package repeat provides repetition and copying of sequences.
//
//	for chunk := range repeat.Repeat(seq.Of(1, 2), 3) {
//	    fmt.Println(chunk) // [1 2] three times
//	}
//
// [Copy] deep-copies every element by reflection so the copies can be mutated
// without affecting the source; [ShallowCopy] duplicates only the outermost
// container.
package repeat
