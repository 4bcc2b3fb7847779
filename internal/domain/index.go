package domain

// Index is a position in a displayed list. Users see one-based positions;
// code works with zero-based ones.
type Index struct {
	zeroBased int
}

// IndexFromOneBased converts a displayed position into an Index.
func IndexFromOneBased(i int) Index  { return Index{zeroBased: i - 1} }
func IndexFromZeroBased(i int) Index { return Index{zeroBased: i} }

func (i Index) ZeroBased() int { return i.zeroBased }
func (i Index) OneBased() int  { return i.zeroBased + 1 }
