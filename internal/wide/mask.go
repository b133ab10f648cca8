package wide

// Mask4 holds one comparison result per lane.
type Mask4 [Lanes]bool

// Not inverts every lane.
func (m Mask4) Not() Mask4 {
	return Mask4{!m[0], !m[1], !m[2], !m[3]}
}

// Or combines two masks lane by lane.
func (m Mask4) Or(other Mask4) Mask4 {
	return Mask4{m[0] || other[0], m[1] || other[1], m[2] || other[2], m[3] || other[3]}
}

// Any reports whether at least one lane is set.
func (m Mask4) Any() bool {
	return m[0] || m[1] || m[2] || m[3]
}
