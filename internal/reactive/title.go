package reactive

// Title is the page-session title cell shared by views.
type Title = Writable[int]

// NewTitle returns a title cell holding 0.
func NewTitle() *Title {
	return NewWritable(0)
}
