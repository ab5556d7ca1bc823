package models

// Titles holds the human-readable headings of a course.
type Titles struct {
	Description     string `json:"description"`
	LongDescription string `json:"longDescription,omitempty"`
}

type Course struct {
	ID             int    `json:"id"`
	SeqNo          int    `json:"seqNo"`
	URL            string `json:"url,omitempty"`
	Titles         Titles `json:"titles"`
	IconURL        string `json:"iconUrl,omitempty"`
	CourseListIcon string `json:"courseListIcon,omitempty"`
	LessonsCount   int    `json:"lessonsCount,omitempty"`
	Category       string `json:"category,omitempty"`
	Promo          bool   `json:"promo"`
}

// TitlesChanges is the partial form of Titles.
type TitlesChanges struct {
	Description     *string `json:"description,omitempty"`
	LongDescription *string `json:"longDescription,omitempty"`
}

// CourseChanges is a partial course update. Only set fields are encoded,
// and there is deliberately no ID field.
type CourseChanges struct {
	SeqNo          *int           `json:"seqNo,omitempty"`
	URL            *string        `json:"url,omitempty"`
	Titles         *TitlesChanges `json:"titles,omitempty"`
	IconURL        *string        `json:"iconUrl,omitempty"`
	CourseListIcon *string        `json:"courseListIcon,omitempty"`
	LessonsCount   *int           `json:"lessonsCount,omitempty"`
	Category       *string        `json:"category,omitempty"`
	Promo          *bool          `json:"promo,omitempty"`
}

// DescriptionChange builds the common "rename a course" partial update.
func DescriptionChange(description string) CourseChanges {
	return CourseChanges{Titles: &TitlesChanges{Description: &description}}
}

// Empty reports whether the changes carry no fields at all.
func (ch CourseChanges) Empty() bool {
	return ch.SeqNo == nil && ch.URL == nil && ch.IconURL == nil &&
		ch.CourseListIcon == nil && ch.LessonsCount == nil &&
		ch.Category == nil && ch.Promo == nil &&
		(ch.Titles == nil || (ch.Titles.Description == nil && ch.Titles.LongDescription == nil))
}

// Apply merges changes into a copy of the course. The ID never changes.
func (c Course) Apply(ch CourseChanges) Course {
	if ch.SeqNo != nil {
		c.SeqNo = *ch.SeqNo
	}
	if ch.URL != nil {
		c.URL = *ch.URL
	}
	if ch.Titles != nil {
		if ch.Titles.Description != nil {
			c.Titles.Description = *ch.Titles.Description
		}
		if ch.Titles.LongDescription != nil {
			c.Titles.LongDescription = *ch.Titles.LongDescription
		}
	}
	if ch.IconURL != nil {
		c.IconURL = *ch.IconURL
	}
	if ch.CourseListIcon != nil {
		c.CourseListIcon = *ch.CourseListIcon
	}
	if ch.LessonsCount != nil {
		c.LessonsCount = *ch.LessonsCount
	}
	if ch.Category != nil {
		c.Category = *ch.Category
	}
	if ch.Promo != nil {
		c.Promo = *ch.Promo
	}
	return c
}
