package domain

import "strconv"

// RootLevel is the task level of a top-level action.
const RootLevel = "/"

// ChildLevel computes the level path of a child action. The index is the
// parent's children count after incrementing, so the first child of "/"
// is "/1/" and the third child of "/1/" is "/1/3/".
func ChildLevel(parent string, index int) string {
	return parent + strconv.Itoa(index) + "/"
}
