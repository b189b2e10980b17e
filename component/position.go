package component

// HorizontalPosition places text horizontally relative to an anchor x.
// Start and End follow the layout direction: in left-to-right layouts a
// Start-positioned text begins at the anchor and extends right.
type HorizontalPosition int

const (
	HorizontalStart HorizontalPosition = iota
	HorizontalCenter
	HorizontalEnd
)

func (p HorizontalPosition) String() string {
	switch p {
	case HorizontalStart:
		return "Start"
	case HorizontalCenter:
		return "Center"
	case HorizontalEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// TextLeft returns the left edge of a block of the given width anchored at x.
func (p HorizontalPosition) TextLeft(x, width float64, rtl bool) float64 {
	switch p {
	case HorizontalCenter:
		return x - width/2
	case HorizontalEnd:
		if rtl {
			return x
		}
		return x - width
	default:
		if rtl {
			return x - width
		}
		return x
	}
}

// VerticalPosition places text vertically relative to an anchor y.
// Top puts the text above the anchor, Bottom below it.
type VerticalPosition int

const (
	VerticalTop VerticalPosition = iota
	VerticalCenter
	VerticalBottom
)

func (p VerticalPosition) String() string {
	switch p {
	case VerticalTop:
		return "Top"
	case VerticalCenter:
		return "Center"
	case VerticalBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// TextTop returns the top edge of a block of the given height anchored at y.
func (p VerticalPosition) TextTop(y, height float64) float64 {
	switch p {
	case VerticalTop:
		return y - height
	case VerticalCenter:
		return y - height/2
	default:
		return y
	}
}
