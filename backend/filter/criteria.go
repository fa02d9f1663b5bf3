package filter

// Criteria is the set of user-selected filter dimensions. Every field is
// optional: nil pointers and empty slices mean the dimension is not active,
// which is distinct from an explicit zero value (e.g. MarkedForReview
// pointing at false still filters).
type Criteria struct {
	Specialty  *string `json:"specialty"`
	Topic      *string `json:"topic"`
	Subtopic   *string `json:"subtopic"`
	Board      *string `json:"board"`
	Year       *int    `json:"year"`
	Difficulty *string `json:"difficulty"`

	Specialties  []string `json:"specialties"`
	Subtopics    []string `json:"subtopics"`
	Institutions []string `json:"institutions"`
	Years        []int    `json:"years"`
	Regions      []string `json:"regions"`
	Purposes     []string `json:"purposes"`

	Answered        *bool `json:"answered"`
	MarkedForReview *bool `json:"marked_for_review"`
}

// IsEmpty reports whether no dimension is active at all.
func (c Criteria) IsEmpty() bool {
	return c.Specialty == nil &&
		c.Topic == nil &&
		c.Subtopic == nil &&
		c.Board == nil &&
		c.Year == nil &&
		c.Difficulty == nil &&
		len(c.Specialties) == 0 &&
		len(c.Subtopics) == 0 &&
		len(c.Institutions) == 0 &&
		len(c.Years) == 0 &&
		len(c.Regions) == 0 &&
		len(c.Purposes) == 0 &&
		c.Answered == nil &&
		c.MarkedForReview == nil
}
