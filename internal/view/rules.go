package view

import "github.com/fulgas/sarif-to-md/internal/sarif"

// cweProperty is the property bag key holding a rule's CWE identifiers.
const cweProperty = "cwe"

// RuleMetadata is the descriptive data of a declared rule.
type RuleMetadata struct {
	Name        *string
	Description *string
	HelpURI     *string
	CWEIDs      []string
	Tags        []string
}

// RuleIndex maps rule ids to their metadata.
type RuleIndex map[string]*RuleMetadata

// BuildRuleIndex indexes the rules of a run by id. When two rules share an
// id the later one wins.
func BuildRuleIndex(rules []sarif.ReportingDescriptor) RuleIndex {
	index := make(RuleIndex, len(rules))
	for _, rule := range rules {
		index[rule.ID] = ruleMetadata(rule)
	}
	return index
}

// Lookup returns the metadata for id, or nil when no rule declares it.
func (idx RuleIndex) Lookup(id string) *RuleMetadata {
	return idx[id]
}

func ruleMetadata(rule sarif.ReportingDescriptor) *RuleMetadata {
	meta := &RuleMetadata{
		Name:    rule.Name,
		HelpURI: rule.HelpURI,
	}

	switch {
	case rule.ShortDescription != nil:
		meta.Description = &rule.ShortDescription.Text
	case rule.FullDescription != nil:
		meta.Description = &rule.FullDescription.Text
	}

	if rule.Properties != nil {
		meta.CWEIDs = rule.Properties.StringArray(cweProperty)
		meta.Tags = rule.Properties.Tags
	}

	return meta
}
