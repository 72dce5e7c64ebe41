package codec

import (
	"fmt"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
)

// EncodePage flattens a page and its fields.
func EncodePage(p *forms.FormPage) map[string]any {
	fields := make([]any, len(p.Fields))
	for i, f := range p.Fields {
		fields[i] = EncodeField(f)
	}
	return map[string]any{
		"id":     p.ID,
		"title":  p.Title,
		"order":  p.Order,
		"fields": fields,
	}
}

// DecodePage reconstructs a page; see DecodePageWithMeta for warnings.
func DecodePage(rec map[string]any) *forms.FormPage {
	p, _ := DecodePageWithMeta(rec)
	return p
}

// DecodePageWithMeta reconstructs a page, collecting per-field decode
// warnings pathed /fields/<index>/....
func DecodePageWithMeta(rec map[string]any) (*forms.FormPage, forms.Issues) {
	var warns forms.Issues
	p := &forms.FormPage{
		ID:    getString(rec, "id"),
		Title: getString(rec, "title"),
		Order: getInt(rec, "order"),
	}
	rawFields, _ := rec["fields"].([]any)
	for i, rf := range rawFields {
		frec, ok := rf.(map[string]any)
		if !ok {
			continue
		}
		f, fw := DecodeFieldWithMeta(frec)
		p.Fields = append(p.Fields, f)
		for _, it := range fw {
			it.Path = fmt.Sprintf("/fields/%d%s", i, it.Path)
			warns = forms.AppendIssues(warns, it)
		}
	}
	return p, warns
}

// EncodeSchema flattens a whole form schema into the storage record shape.
func EncodeSchema(s *forms.FormSchema) map[string]any {
	pages := make([]any, len(s.Pages))
	for i, p := range s.Pages {
		pages[i] = EncodePage(p)
	}
	return map[string]any{
		"pages":            pages,
		"layout":           encodeLayout(s.Layout),
		"isShuffleEnabled": s.IsShuffleEnabled,
	}
}

// DecodeSchema reconstructs a schema; see DecodeSchemaWithMeta for warnings.
func DecodeSchema(rec map[string]any) *forms.FormSchema {
	s, _ := DecodeSchemaWithMeta(rec)
	return s
}

// DecodeSchemaWithMeta reconstructs a schema, collecting decode warnings
// pathed /pages/<index>/....
func DecodeSchemaWithMeta(rec map[string]any) (*forms.FormSchema, forms.Issues) {
	var warns forms.Issues
	s := &forms.FormSchema{
		IsShuffleEnabled: getBool(rec, "isShuffleEnabled"),
	}
	if lr, ok := rec["layout"].(map[string]any); ok {
		s.Layout = decodeLayout(lr)
	}
	rawPages, _ := rec["pages"].([]any)
	for i, rp := range rawPages {
		prec, ok := rp.(map[string]any)
		if !ok {
			continue
		}
		p, pw := DecodePageWithMeta(prec)
		s.Pages = append(s.Pages, p)
		for _, it := range pw {
			it.Path = fmt.Sprintf("/pages/%d%s", i, it.Path)
			warns = forms.AppendIssues(warns, it)
		}
	}
	return s, warns
}

func encodeLayout(l forms.FormLayout) map[string]any {
	return map[string]any{
		"theme":           l.Theme,
		"textColor":       l.TextColor,
		"spacing":         l.Spacing,
		"code":            l.Code,
		"content":         l.Content,
		"backgroundImage": l.BackgroundImage,
		"pageMode":        l.PageMode,
	}
}

func decodeLayout(rec map[string]any) forms.FormLayout {
	return forms.FormLayout{
		Theme:           getString(rec, "theme"),
		TextColor:       getString(rec, "textColor"),
		Spacing:         getString(rec, "spacing"),
		Code:            getString(rec, "code"),
		Content:         getString(rec, "content"),
		BackgroundImage: getString(rec, "backgroundImage"),
		PageMode:        getString(rec, "pageMode"),
	}
}

func getInt(rec map[string]any, key string) int {
	if p := getIntPtr(rec, key); p != nil {
		return *p
	}
	return 0
}
