package render

const (
	CallCircle = "circle"
	CallLine   = "line"
	CallText   = "text"
)

// Call is one recorded drawing request.
type Call struct {
	Kind   string
	From   Vector
	To     Vector
	Radius float64
	Text   string
	Style  Style
}

// Recorder is a headless Graphics that keeps every request in order.
type Recorder struct {
	Calls []Call
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DrawCircle(center Vector, radius float64, style Style) {
	r.Calls = append(r.Calls, Call{Kind: CallCircle, From: center, Radius: radius, Style: style})
}

func (r *Recorder) DrawLine(from, to Vector, style Style) {
	r.Calls = append(r.Calls, Call{Kind: CallLine, From: from, To: to, Style: style})
}

func (r *Recorder) WriteText(x, y float64, text string, style Style) {
	r.Calls = append(r.Calls, Call{Kind: CallText, From: Vector{X: x, Y: y}, Text: text, Style: style})
}

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	count := 0
	for _, call := range r.Calls {
		if call.Kind == kind {
			count++
		}
	}
	return count
}

func (r *Recorder) Reset() {
	r.Calls = nil
}
