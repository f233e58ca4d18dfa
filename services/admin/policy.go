package admin

import (
	"context"
	"fmt"

	"medibook/models"

	"github.com/google/uuid"
)

// GetPolicies returns the published privacy-policy sections.
func (a *DefaultAdminService) GetPolicies(ctx context.Context) ([]models.PolicySection, error) {
	return a.Policies.ListPolicies(ctx)
}

// ApplyPolicyEdit applies one tagged editor action and stores the result.
// Each action variant carries only its own fields; the dispatch is exhaustive
// and unknown kinds are rejected.
func (a *DefaultAdminService) ApplyPolicyEdit(ctx context.Context, edit models.PolicyEdit) ([]models.PolicySection, error) {
	sections, err := a.Policies.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}

	switch edit.Kind {
	case models.PolicyEditCreate:
		if edit.Create == nil {
			return nil, fmt.Errorf("policy edit %q is missing its payload", edit.Kind)
		}
		section := models.PolicySection{
			ID:    uuid.New().String(),
			Title: edit.Create.Title,
		}
		for _, text := range edit.Create.Items {
			section.Items = append(section.Items, models.PolicyItem{ID: uuid.New().String(), Text: text})
		}
		sections = append(sections, section)

	case models.PolicyEditEditItem:
		if edit.EditItem == nil {
			return nil, fmt.Errorf("policy edit %q is missing its payload", edit.Kind)
		}
		if !rewriteItem(sections, edit.EditItem.ItemID, edit.EditItem.Text) {
			return nil, fmt.Errorf("policy item %q not found", edit.EditItem.ItemID)
		}

	case models.PolicyEditAddItem:
		if edit.AddItem == nil {
			return nil, fmt.Errorf("policy edit %q is missing its payload", edit.Kind)
		}
		section := findSection(sections, edit.AddItem.SectionID)
		if section == nil {
			return nil, fmt.Errorf("policy section %q not found", edit.AddItem.SectionID)
		}
		section.Items = append(section.Items, models.PolicyItem{ID: uuid.New().String(), Text: edit.AddItem.Text})

	case models.PolicyEditRenameSection:
		if edit.RenameSection == nil {
			return nil, fmt.Errorf("policy edit %q is missing its payload", edit.Kind)
		}
		section := findSection(sections, edit.RenameSection.SectionID)
		if section == nil {
			return nil, fmt.Errorf("policy section %q not found", edit.RenameSection.SectionID)
		}
		section.Title = edit.RenameSection.Title

	default:
		return nil, fmt.Errorf("unknown policy edit kind %q", edit.Kind)
	}

	if err := a.Policies.ReplacePolicies(ctx, sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func findSection(sections []models.PolicySection, id string) *models.PolicySection {
	for i := range sections {
		if sections[i].ID == id {
			return &sections[i]
		}
	}
	return nil
}

func rewriteItem(sections []models.PolicySection, itemID, text string) bool {
	for i := range sections {
		for j := range sections[i].Items {
			if sections[i].Items[j].ID == itemID {
				sections[i].Items[j].Text = text
				return true
			}
		}
	}
	return false
}
