package copy

import copysvc "catalog/service/copy"

// CopyFormReq carries raw form fields; required-ness and sanitization are
// the normalizer's contract, so no validate tags on the fields here.
type CopyFormReq struct {
	Book    string `json:"book" form:"book"`
	Imprint string `json:"imprint" form:"imprint"`
	Status  string `json:"status" form:"status"`
	DueBack string `json:"due_back" form:"due_back"`
}

func (r CopyFormReq) toInput() copysvc.FormInput {
	return copysvc.FormInput{
		Book:    r.Book,
		Imprint: r.Imprint,
		Status:  r.Status,
		DueBack: r.DueBack,
	}
}
