package dto

// BlogCreateRequest binds the scalar multipart fields of a blog post.
// The image part is read separately and is required on create.
type BlogCreateRequest struct {
	MetaTitle       string `form:"meta_title"`
	MetaDescription string `form:"meta_description"`
	MetaKeywords    string `form:"meta_keywords"`
	Title           string `form:"title" binding:"required"`
	BlogURL         string `form:"blog_url"`
	AuthorName      string `form:"author_name"`
	Category        string `form:"category"`
	BlogDate        string `form:"blog_date" binding:"required"`
	BlogDescription string `form:"blog_description" binding:"required"`
}

// BlogUpdateRequest updates only the fields present in the form; a new
// image replaces the stored file, an absent one keeps it.
type BlogUpdateRequest struct {
	MetaTitle       *string `form:"meta_title"`
	MetaDescription *string `form:"meta_description"`
	MetaKeywords    *string `form:"meta_keywords"`
	Title           *string `form:"title"`
	BlogURL         *string `form:"blog_url"`
	AuthorName      *string `form:"author_name"`
	Category        *string `form:"category"`
	BlogDate        *string `form:"blog_date"`
	BlogDescription *string `form:"blog_description"`
}

// EventCreateRequest binds the scalar multipart fields of an event.
type EventCreateRequest struct {
	MetaTitle        string `form:"meta_title"`
	MetaDescription  string `form:"meta_description"`
	MetaKeywords     string `form:"meta_keywords"`
	EventTitle       string `form:"event_title" binding:"required"`
	EventURL         string `form:"event_url"`
	AuthorName       string `form:"author_name"`
	Category         string `form:"category"`
	EventDate        string `form:"event_date" binding:"required"`
	EventDescription string `form:"event_description" binding:"required"`
}

// EventUpdateRequest updates only the fields present in the form.
type EventUpdateRequest struct {
	MetaTitle        *string `form:"meta_title"`
	MetaDescription  *string `form:"meta_description"`
	MetaKeywords     *string `form:"meta_keywords"`
	EventTitle       *string `form:"event_title"`
	EventURL         *string `form:"event_url"`
	AuthorName       *string `form:"author_name"`
	Category         *string `form:"category"`
	EventDate        *string `form:"event_date"`
	EventDescription *string `form:"event_description"`
}
