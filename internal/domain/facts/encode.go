package facts

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Encode writes the snapshot as a flat, line-oriented fact file: one fact per
// line, grouped by fact type, deterministic order within each group.
// Identifiers are bare tokens, text fields are double-quoted. The file is a
// materialization of the snapshot, never a source of truth.
func (fb *FactBase) Encode(w io.Writer) error {
	if fb == nil {
		return fmt.Errorf("nil fact base")
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%% fact base generated %s\n", fb.GeneratedAt.Format(time.RFC3339))

	fmt.Fprintln(bw, "% persons")
	for _, id := range sortedIDs(fb.Persons) {
		p := fb.Persons[id]
		fmt.Fprintf(bw, "person(%s, %s, %s, %s, %s).\n",
			p.ID, q(p.FirstName), q(p.LastName), q(p.City), q(p.Region))
	}

	fmt.Fprintln(bw, "% skills")
	for _, id := range sortedIDs(fb.Skills) {
		s := fb.Skills[id]
		fmt.Fprintf(bw, "skill(%s, %s, %s, %s).\n",
			s.ID, q(s.Name), q(s.Category), q(s.Specialty))
	}

	fmt.Fprintln(bw, "% person skills")
	for _, pid := range sortedIDs(fb.PersonSkills) {
		for _, ps := range fb.PersonSkills[pid] {
			fmt.Fprintf(bw, "person_skill(%s, %s, %s, %d).\n",
				ps.PersonID, ps.SkillID, q(ps.Level.Tag()), ps.Years)
		}
	}

	fmt.Fprintln(bw, "% companies")
	for _, id := range sortedIDs(fb.Companies) {
		c := fb.Companies[id]
		fmt.Fprintf(bw, "company(%s, %s, %s, %s, %s).\n",
			c.ID, q(c.Name), q(c.Industry), q(c.City), q(c.Region))
	}

	fmt.Fprintln(bw, "% offers")
	for _, id := range sortedIDs(fb.Offers) {
		o := fb.Offers[id]
		owner := o.CompanyID
		if owner == uuid.Nil {
			owner = o.OwnerID
		}
		fmt.Fprintf(bw, "offer(%s, %s, %s, %s).\n",
			o.ID, owner, q(o.Title), q(o.PublishedAt.UTC().Format(time.RFC3339)))
	}

	fmt.Fprintln(bw, "% offer requirements")
	for _, oid := range sortedIDs(fb.Requirements) {
		for _, r := range fb.Requirements[oid] {
			fmt.Fprintf(bw, "requires(%s, %s, %s).\n", r.OfferID, r.SkillID, q(r.Level.Tag()))
		}
	}

	fmt.Fprintln(bw, "% applications")
	for _, a := range fb.Applications {
		fmt.Fprintf(bw, "application(%s, %s, %s).\n", a.PersonID, a.OfferID, q(a.Status))
	}

	fmt.Fprintln(bw, "% learned relations")
	rels := make([]RelationFact, len(fb.Relations))
	copy(rels, fb.Relations)
	sort.Slice(rels, func(i, j int) bool {
		if rels[i].BaseSkill != rels[j].BaseSkill {
			return rels[i].BaseSkill < rels[j].BaseSkill
		}
		return rels[i].TargetSkill < rels[j].TargetSkill
	})
	for _, rel := range rels {
		fmt.Fprintf(bw, "related(%s, %s, %.2f, %d, %s).\n",
			q(rel.BaseSkill), q(rel.TargetSkill), rel.Confidence, rel.Frequency, q(rel.Source))
	}

	return bw.Flush()
}

// WriteFile performs a full overwrite via temp file and rename so a crashed
// write never leaves a torn fact file; rerunning regeneration recovers it.
func (fb *FactBase) WriteFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("empty fact file path")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".facts-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := fb.Encode(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

func sortedIDs[V any](m map[uuid.UUID]V) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func q(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `'`) + `"`
}
