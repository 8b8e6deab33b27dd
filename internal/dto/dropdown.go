package dto

import "winback/internal/tabular"

type DropdownChurnActionsResponseDto struct {
	Options []tabular.ChurnActionOption `json:"options"`
}

type DropdownActiveActionsResponseDto struct {
	Options []string `json:"options"`
}

type DropdownWhyReasonsResponseDto struct {
	Options []tabular.WhyReasonOption `json:"options"`
}
