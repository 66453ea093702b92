package models

// Book is a reading item tracked by the shelf. Finished is derived from the page counters and never set directly.
type Book struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Year       int    `json:"year"`
	Author     string `json:"author"`
	Summary    string `json:"summary"`
	Publisher  string `json:"publisher"`
	PageCount  int    `json:"pageCount"`
	ReadPage   int    `json:"readPage"`
	Finished   bool   `json:"finished"`
	Reading    bool   `json:"reading"`
	InsertedAt string `json:"insertedAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// BookSummary is the projection returned by list queries.
type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// BookPayload is the client-supplied body for create and update. Nil means the field was absent.
type BookPayload struct {
	Name      *string `json:"name"`
	Year      *int    `json:"year"`
	Author    *string `json:"author"`
	Summary   *string `json:"summary"`
	Publisher *string `json:"publisher"`
	PageCount *int    `json:"pageCount"`
	ReadPage  *int    `json:"readPage"`
	Reading   *bool   `json:"reading"`
}

// ComputeFinished reports whether every page has been read.
func ComputeFinished(pageCount, readPage int) bool {
	return pageCount == readPage
}

func (b Book) Summarize() BookSummary {
	return BookSummary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// Apply copies the payload's mutable fields onto b and recomputes Finished. Absent fields become zero values.
func (p BookPayload) Apply(b *Book) {
	b.Name = deref(p.Name)
	b.Year = deref(p.Year)
	b.Author = deref(p.Author)
	b.Summary = deref(p.Summary)
	b.Publisher = deref(p.Publisher)
	b.PageCount = deref(p.PageCount)
	b.ReadPage = deref(p.ReadPage)
	b.Reading = deref(p.Reading)
	b.Finished = ComputeFinished(b.PageCount, b.ReadPage)
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
