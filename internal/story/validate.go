package story

import (
	"errors"
	"fmt"
	"strings"

	"github.com/talgya/utopian-sands/internal/player"
)

// Validate checks authored content for mistakes the interpreter cannot
// recover from at play time. Every nine-option table must tag each of the
// nine buckets exactly once.
func Validate(events []*Event) error {
	var errs []error
	seen := make(map[int]bool, len(events))
	for i, ev := range events {
		if ev == nil || ev.Root == nil {
			errs = append(errs, fmt.Errorf("event #%d: missing root stage", i+1))
			continue
		}
		if seen[ev.ID] {
			errs = append(errs, fmt.Errorf("event %d: duplicate id", ev.ID))
		}
		seen[ev.ID] = true
		errs = append(errs, validateStage(fmt.Sprintf("event %d", ev.ID), ev.Root)...)
	}
	return errors.Join(errs...)
}

func validateStage(where string, st *Stage) []error {
	var errs []error
	if len(st.Options) == 0 {
		return []error{fmt.Errorf("%s: no options", where)}
	}
	if st.LogFmt != "" && strings.Count(st.LogFmt, "%d") != 1 {
		errs = append(errs, fmt.Errorf("%s: log format %q must hold exactly one %%d", where, st.LogFmt))
	}

	if len(st.Options) == player.NumTags {
		var covered player.Tally
		for _, opt := range st.Options {
			if opt.Result.Tag.Valid() {
				covered[opt.Result.Tag-1]++
			}
		}
		for _, tag := range player.AllTags() {
			if n := covered.Count(tag); n != 1 {
				errs = append(errs, fmt.Errorf("%s: tag %s used %d times", where, tag, n))
			}
		}
	}

	for i, opt := range st.Options {
		at := fmt.Sprintf("%s option %d", where, i+1)
		if opt.Label == "" {
			errs = append(errs, fmt.Errorf("%s: empty label", at))
		}
		errs = append(errs, validateConsequence(at, &opt.Result)...)
		if opt.Next != nil {
			errs = append(errs, validateStage(at, opt.Next)...)
		}
	}
	return errs
}

func validateConsequence(where string, c *Consequence) []error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Tag != player.NoTag && !c.Tag.Valid() {
		errs = append(errs, fmt.Errorf("%s: invalid tag %d", where, c.Tag))
	}
	if c.Fatal && c.Health != 0 {
		errs = append(errs, fmt.Errorf("%s: fatal consequence also sets a health delta", where))
	}
	if sp := c.Spend; sp != nil {
		if len(sp.Items) == 0 {
			errs = append(errs, fmt.Errorf("%s: spend without items", where))
		}
		errs = append(errs, validateConsequence(where+" (otherwise)", sp.Otherwise)...)
	}
	if b := c.Branch; b != nil {
		if b.Then == nil {
			errs = append(errs, fmt.Errorf("%s: branch without a then consequence", where))
		}
		if b.Gate == nil && (b.Chance <= 0 || b.Chance >= 1) {
			errs = append(errs, fmt.Errorf("%s: branch chance %v outside (0, 1)", where, b.Chance))
		}
		errs = append(errs, validateConsequence(where+" (then)", b.Then)...)
		errs = append(errs, validateConsequence(where+" (else)", b.Else)...)
	}
	return errs
}
