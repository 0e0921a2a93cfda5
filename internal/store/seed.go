package store

import "flowedit/internal/model"

const seedX = 300

// Seed returns the chain every editor session starts from.
func Seed() Store {
	return New([]model.WorkflowNode{
		{
			ID:       1,
			Title:    "Welcome to Tesla",
			Kind:     model.NodeKindStart,
			Actions:  []string{"Company Information", "Visual Info", "Brochure"},
			Position: model.Position{X: seedX, Y: 50},
		},
		{
			ID:                2,
			Title:             "Personal Details",
			Kind:              model.NodeKindStep,
			Actions:           []string{"Data Collection"},
			Position:          model.Position{X: seedX, Y: 250},
			HasSideAnnotation: true,
		},
		{
			ID:    3,
			Title: "Verification",
			Kind:  model.NodeKindStep,
			Actions: []string{
				"Archive Verification",
				"Offer Letter",
				"Compliance and Acknowledgment",
			},
			Position: model.Position{X: seedX, Y: 450},
		},
		{
			ID:       4,
			Title:    "Onboarding Kit",
			Kind:     model.NodeKindStep,
			Actions:  []string{"Onboarding Kit"},
			Position: model.Position{X: seedX, Y: 650},
		},
		{
			ID:       5,
			Title:    "Company Assets",
			Kind:     model.NodeKindStep,
			Actions:  []string{"Media Library"},
			Position: model.Position{X: seedX, Y: 850},
		},
	})
}
