package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hirebot/hirebot/internal/domain/errors"
)

// SearchCriteria is the structured input of the job search tool. Every
// recognized field is optional; absence means unspecified. Fields the
// schema does not know about are kept in Extra and forwarded to the
// workflow verbatim.
type SearchCriteria struct {
	Position        string
	Location        string
	Skills          []string
	ExperienceLevel string
	JobType         string
	SalaryMin       *float64
	SalaryMax       *float64
	Remote          *bool
	Extra           map[string]json.RawMessage

	// known holds the original encoding of every recognized field that
	// was present in the input, so explicit zero values ("", null, false)
	// survive the round trip to the workflow byte-for-byte.
	known map[string]json.RawMessage
}

// ParseSearchCriteria decodes and validates the raw tool arguments. All
// violations are collected before failing so the agent sees every bad
// field at once, as "field: reason" pairs joined by commas.
func ParseSearchCriteria(raw []byte) (*SearchCriteria, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.ValidationErrorf("criteria: must be a JSON object")
	}

	c := &SearchCriteria{known: map[string]json.RawMessage{}}
	var violations []string

	take := func(key string, target any, reason string) {
		value, ok := fields[key]
		if !ok {
			return
		}
		delete(fields, key)
		if err := json.Unmarshal(value, target); err != nil {
			violations = append(violations, key+": "+reason)
			return
		}
		c.known[key] = value
	}

	take("position", &c.Position, "must be a string")
	take("location", &c.Location, "must be a string")
	take("experienceLevel", &c.ExperienceLevel, "must be a string")
	take("jobType", &c.JobType, "must be a string")
	take("salaryMin", &c.SalaryMin, "must be a number")
	take("salaryMax", &c.SalaryMax, "must be a number")
	take("remote", &c.Remote, "must be a boolean")

	if value, ok := fields["skills"]; ok {
		delete(fields, "skills")
		var items []json.RawMessage
		if err := json.Unmarshal(value, &items); err != nil {
			violations = append(violations, "skills: must be an array of strings")
		} else {
			// A literal null leaves items nil and means unspecified.
			if items != nil {
				skills := make([]string, 0, len(items))
				for i, item := range items {
					var s string
					if err := json.Unmarshal(item, &s); err != nil {
						violations = append(violations, fmt.Sprintf("skills[%d]: must be a string", i))
						continue
					}
					skills = append(skills, s)
				}
				c.Skills = skills
			}
			c.known["skills"] = value
		}
	}

	if len(fields) > 0 {
		c.Extra = fields
	}

	if len(violations) > 0 {
		return nil, errors.ValidationErrorf("%s", strings.Join(violations, ", "))
	}

	return c, nil
}

// MarshalJSON reassembles the criteria into the same wire shape it was
// parsed from, extra fields included, so the workflow receives exactly
// what the agent submitted. Parsed criteria marshal their known fields
// from the retained originals; criteria built in code fall back to the
// typed fields.
func (c *SearchCriteria) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+len(c.known)+8)
	for key, value := range c.Extra {
		out[key] = value
	}

	if c.Position != "" {
		out["position"] = c.Position
	}
	if c.Location != "" {
		out["location"] = c.Location
	}
	if c.Skills != nil {
		out["skills"] = c.Skills
	}
	if c.ExperienceLevel != "" {
		out["experienceLevel"] = c.ExperienceLevel
	}
	if c.JobType != "" {
		out["jobType"] = c.JobType
	}
	if c.SalaryMin != nil {
		out["salaryMin"] = *c.SalaryMin
	}
	if c.SalaryMax != nil {
		out["salaryMax"] = *c.SalaryMax
	}
	if c.Remote != nil {
		out["remote"] = *c.Remote
	}

	for key, value := range c.known {
		out[key] = value
	}

	return json.Marshal(out)
}
