package main

import "fmt"

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	doc, err := deps.Store.ReadFile(deps.Ctx, c.HTML)
	if err != nil {
		return fail(deps, err)
	}

	sections, err := deps.Lister.ListSections(doc)
	if err != nil {
		return fail(deps, err)
	}

	if len(sections) == 0 {
		fmt.Fprintf(deps.Stdout, "No sections with an id found in %s.\n", c.HTML)
		return nil
	}

	for _, s := range sections {
		if s.Title == "" {
			fmt.Fprintln(deps.Stdout, s.ID)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", s.ID, s.Title)
	}
	return nil
}
