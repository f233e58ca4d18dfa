package models

// PolicyItem is one clause inside a privacy-policy section.
type PolicyItem struct {
	ID   string `json:"_id"`
	Text string `json:"text"`
}

// PolicySection is one titled block of the clinic's privacy-policy content,
// owned by the upstream API and edited through the admin back-office.
type PolicySection struct {
	ID    string       `json:"_id"`
	Title string       `json:"title"`
	Items []PolicyItem `json:"items,omitempty"`
}

// Policy editor action kinds. Each action carries only the fields it needs
// and is dispatched by exhaustive switch, replacing flag-combination form
// state.
const (
	PolicyEditCreate        = "create"
	PolicyEditEditItem      = "editItem"
	PolicyEditAddItem       = "addItem"
	PolicyEditRenameSection = "renameSection"
)

// PolicyEdit is a tagged editor action.
type PolicyEdit struct {
	Kind          string               `json:"kind" binding:"required"`
	Create        *PolicyCreateSection `json:"create,omitempty"`
	EditItem      *PolicyItemEdit      `json:"editItem,omitempty"`
	AddItem       *PolicyItemAdd       `json:"addItem,omitempty"`
	RenameSection *PolicySectionRename `json:"renameSection,omitempty"`
}

// PolicyCreateSection creates a new section with an initial set of items.
type PolicyCreateSection struct {
	Title string   `json:"title" binding:"required"`
	Items []string `json:"items,omitempty"`
}

// PolicyItemEdit rewrites the text of one existing item.
type PolicyItemEdit struct {
	ItemID string `json:"itemId" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// PolicyItemAdd appends an item to an existing section.
type PolicyItemAdd struct {
	SectionID string `json:"sectionId" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// PolicySectionRename retitles an existing section.
type PolicySectionRename struct {
	SectionID string `json:"sectionId" binding:"required"`
	Title     string `json:"title" binding:"required"`
}
