package types

// CreateDocumentRequest loads pasted text as a new document
type CreateDocumentRequest struct {
	Title string `json:"title,omitempty" example:"Chapter one"`
	Text  string `json:"text" binding:"required" example:"The cat sat. The cat ran."`
}

// CaptureSelectionRequest marks a range of the document as the pending selection
type CaptureSelectionRequest struct {
	StartOffset *int `json:"start_offset" binding:"required" example:"17"`
	EndOffset   *int `json:"end_offset" binding:"required" example:"20"`
}

// ConfirmSelectionRequest turns the pending selection into a highlight
type ConfirmSelectionRequest struct {
	Note  string `json:"note,omitempty" example:"second cat"`
	Color string `json:"color,omitempty" example:"yellow" enums:"yellow,green,blue,pink"`
}

// AddHighlightRequest creates a highlight directly. Offsets are optional;
// without them the first occurrence of text is highlighted.
type AddHighlightRequest struct {
	Text        string `json:"text" example:"cat"`
	Note        string `json:"note,omitempty" example:"a pet"`
	Color       string `json:"color,omitempty" example:"green" enums:"yellow,green,blue,pink"`
	StartOffset *int   `json:"start_offset,omitempty" example:"17"`
	EndOffset   *int   `json:"end_offset,omitempty" example:"20"`
}

// UpdateNoteRequest replaces a highlight's note. An empty note clears it.
type UpdateNoteRequest struct {
	Note *string `json:"note" binding:"required" example:"remember this"`
}
