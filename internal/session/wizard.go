package session

import (
	"github.com/kingrea/project-intel/internal/intel"
)

// collectRecord walks the six wizard prompts in their fixed order, seeding
// each answer with whatever the record already holds. A fresh answer
// overwrites only the field just asked; skipped or empty answers leave the
// seed value in place.
func (s *Session) collectRecord(seed intel.Record) (intel.Record, error) {
	rec := seed

	s.p.Println(titleStyle.Render("Technology stack"))
	stack, err := s.collectTechStack(rec.TechStack)
	if err != nil {
		return rec, err
	}
	rec.TechStack = stack

	body, skipped, err := s.p.ReadBlock("API pattern")
	if err != nil {
		return rec, err
	}
	if !skipped && body != "" {
		rec.APIPattern = body
	}

	body, skipped, err = s.p.ReadBlock("Component pattern")
	if err != nil {
		return rec, err
	}
	if !skipped && body != "" {
		rec.ComponentPattern = body
	}

	s.p.Println(titleStyle.Render("Naming conventions"))
	naming, err := s.collectNaming(rec.Naming)
	if err != nil {
		return rec, err
	}
	rec.Naming = naming

	standards, err := s.p.ReadList("Code standards")
	if err != nil {
		return rec, err
	}
	if len(standards) > 0 {
		rec.CodeStandards = standards
	}

	security, err := s.p.ReadList("Security requirements")
	if err != nil {
		return rec, err
	}
	if len(security) > 0 {
		rec.SecurityRequirements = security
	}

	return rec, nil
}

// collectTechStack prompts the four stack fields. All four blank means the
// section stays absent; a partial answer is completed on the spot, since a
// written document never carries a half-filled stack record.
func (s *Session) collectTechStack(current *intel.TechStack) (*intel.TechStack, error) {
	var cur intel.TechStack
	if current != nil {
		cur = *current
	}
	stack := intel.TechStack{}
	fields := []struct {
		label  string
		seed   string
		target *string
	}{
		{"Framework", cur.Framework, &stack.Framework},
		{"Language", cur.Language, &stack.Language},
		{"Database", cur.Database, &stack.Database},
		{"Styling", cur.Styling, &stack.Styling},
	}
	for _, f := range fields {
		answer, err := s.p.AskDefault(f.label, f.seed)
		if err != nil {
			return nil, err
		}
		*f.target = answer
	}
	if stack == (intel.TechStack{}) {
		return nil, nil
	}
	for _, f := range fields {
		if *f.target == "" {
			answer, err := s.askRequired(f.label)
			if err != nil {
				return nil, err
			}
			*f.target = answer
		}
	}
	return &stack, nil
}

// collectNaming mirrors collectTechStack for the naming conventions group.
func (s *Session) collectNaming(current *intel.NamingConventions) (*intel.NamingConventions, error) {
	var cur intel.NamingConventions
	if current != nil {
		cur = *current
	}
	naming := intel.NamingConventions{}
	fields := []struct {
		label  string
		seed   string
		target *string
	}{
		{"Files", cur.Files, &naming.Files},
		{"Components", cur.Components, &naming.Components},
		{"Functions", cur.Functions, &naming.Functions},
		{"Database", cur.Database, &naming.Database},
	}
	for _, f := range fields {
		answer, err := s.p.AskDefault(f.label, f.seed)
		if err != nil {
			return nil, err
		}
		*f.target = answer
	}
	if naming == (intel.NamingConventions{}) {
		return nil, nil
	}
	for _, f := range fields {
		if *f.target == "" {
			answer, err := s.askRequired(f.label)
			if err != nil {
				return nil, err
			}
			*f.target = answer
		}
	}
	return &naming, nil
}

func (s *Session) askRequired(label string) (string, error) {
	for {
		answer, err := s.p.Ask(label)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		s.p.Println(warnStyle.Render(label + " is required to complete this section."))
	}
}
