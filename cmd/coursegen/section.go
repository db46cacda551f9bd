package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/coursegen"
)

// regenerate replaces the section with the given id in the host document
// with fragment, or prints a Markdown preview of it instead.
func regenerate(deps *Dependencies, htmlPath, id, fragment string, preview bool) error {
	if preview {
		md, err := deps.Previewer.Preview(fragment)
		if err != nil {
			return fail(deps, err)
		}
		fmt.Fprint(deps.Stdout, md)
		return nil
	}

	doc, err := deps.Store.ReadFile(deps.Ctx, htmlPath)
	if err != nil {
		return fail(deps, err)
	}

	region, err := deps.Locator.Locate(doc, "section", id)
	if err != nil {
		if coursegen.ErrorCode(err) == coursegen.ENOTFOUND {
			printSectionHint(deps, doc)
		}
		return fail(deps, err)
	}

	changed, err := deps.Store.WriteFile(deps.Ctx, htmlPath, coursegen.Splice(doc, region, fragment))
	if err != nil {
		return fail(deps, err)
	}

	if !changed {
		fmt.Fprintf(deps.Stdout, "%s is already up to date\n", htmlPath)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Successfully updated %s\n", htmlPath)
	return nil
}

// printSectionHint lists the sections the document does have.
func printSectionHint(deps *Dependencies, doc []byte) {
	sections, err := deps.Lister.ListSections(doc)
	if err != nil || len(sections) == 0 {
		return
	}
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	fmt.Fprintf(deps.Stderr, "Hint: the document has sections %s\n", strings.Join(ids, ", "))
}
