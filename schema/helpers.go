package schema

import (
	"sort"
	"time"
)

// parseCreatedYear extracts the calendar year from an SW360 createdOn value.
// Dates are date-only strings interpreted in UTC. Returns 0 when the value is
// missing or malformed so callers can degrade instead of failing.
func parseCreatedYear(createdOn string) int {
	if createdOn == "" {
		return 0
	}
	t, err := time.ParseInLocation(CreatedOnFormat, createdOn, time.UTC)
	if err != nil {
		return 0
	}
	return t.UTC().Year()
}

// NormalizeComponent converts a raw component document into a validated
// record. Field-level problems are degraded to Unknown/zero values and
// reported as defects; the record itself is always usable.
func NormalizeComponent(doc ComponentDoc) (Component, []Defect) {
	var defects []Defect
	c := Component{
		ID:        doc.ID,
		Name:      doc.Name,
		Type:      doc.ComponentType,
		CreatedOn: doc.CreatedOn,
		CreatedBy: doc.CreatedBy,
	}
	if c.Name == "" {
		c.Name = UnknownValue
		defects = append(defects, Defect{Entity: "component", ID: doc.ID, Field: "name", Reason: "missing"})
	}
	if c.Type == "" {
		c.Type = UnknownValue
		defects = append(defects, Defect{Entity: "component", ID: doc.ID, Field: "componentType", Reason: "missing"})
	}
	c.CreatedYear = parseCreatedYear(doc.CreatedOn)
	if c.CreatedYear == 0 && doc.CreatedOn != "" {
		defects = append(defects, Defect{Entity: "component", ID: doc.ID, Field: "createdOn", Reason: "unparseable date " + doc.CreatedOn})
	}
	return c, defects
}

// NormalizeRelease converts a raw release document into a validated record.
// A missing componentId is not a defect of the document shape; it makes the
// release an orphan, which the relationship builder handles.
func NormalizeRelease(doc ReleaseDoc) (Release, []Defect) {
	var defects []Defect
	r := Release{
		ID:          doc.ID,
		Name:        doc.Name,
		Version:     doc.Version,
		ComponentID: doc.ComponentID,
		CreatedOn:   doc.CreatedOn,
		CreatedBy:   doc.CreatedBy,
	}
	if r.Name == "" {
		r.Name = UnknownValue
		defects = append(defects, Defect{Entity: "release", ID: doc.ID, Field: "name", Reason: "missing"})
	}
	if r.Version == "" {
		r.Version = UnknownValue
		defects = append(defects, Defect{Entity: "release", ID: doc.ID, Field: "version", Reason: "missing"})
	}
	r.CreatedYear = parseCreatedYear(doc.CreatedOn)
	if r.CreatedYear == 0 && doc.CreatedOn != "" {
		defects = append(defects, Defect{Entity: "release", ID: doc.ID, Field: "createdOn", Reason: "unparseable date " + doc.CreatedOn})
	}
	return r, defects
}

// NormalizeProject converts a raw project document into a validated record.
// Duplicate release references inside releaseIdToUsage collapse naturally
// because the field is a map; the resulting id list is sorted for
// deterministic iteration.
func NormalizeProject(doc ProjectDoc) (Project, []Defect) {
	var defects []Defect
	p := Project{
		ID:           doc.ID,
		Name:         doc.Name,
		BusinessUnit: doc.BusinessUnit,
	}
	if p.Name == "" {
		p.Name = UnknownValue
		defects = append(defects, Defect{Entity: "project", ID: doc.ID, Field: "name", Reason: "missing"})
	}
	p.CreatedYear = parseCreatedYear(doc.CreatedOn)
	if p.CreatedYear == 0 && doc.CreatedOn != "" {
		defects = append(defects, Defect{Entity: "project", ID: doc.ID, Field: "createdOn", Reason: "unparseable date " + doc.CreatedOn})
	}
	if len(doc.ReleaseIDToUsage) > 0 {
		p.ReleaseIDs = make([]string, 0, len(doc.ReleaseIDToUsage))
		for id := range doc.ReleaseIDToUsage {
			if id == "" {
				continue
			}
			p.ReleaseIDs = append(p.ReleaseIDs, id)
		}
		sort.Strings(p.ReleaseIDs)
	}
	return p, defects
}
