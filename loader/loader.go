package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/openvehiclediag/diagdb-to-odx/diag"
)

// LoadDatabase reads a database description from a YAML or JSON file,
// picking the format from the file extension.
func LoadDatabase(path string) (*diag.Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	return LoadDatabaseFromBytes(data, format)
}

// LoadDatabaseFromBytes parses, validates and completes a database
// description. format is "yaml" or "json".
func LoadDatabaseFromBytes(data []byte, format string) (*diag.Database, error) {
	var db diag.Database
	switch format {
	case "json":
		if err := json.Unmarshal(data, &db); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &db); err != nil {
			return nil, err
		}
	}
	v := validator.New()
	if err := v.Struct(&db); err != nil {
		return nil, err
	}
	assignIDs(&db)
	if err := checkRefs(&db); err != nil {
		return nil, err
	}
	return &db, nil
}

// assignIDs fills in ids for elements whose author omitted one. The
// generated id is "<scope short name>.<element short name>"; when that
// would collide with an id already taken, a UUID is used instead.
func assignIDs(db *diag.Database) {
	taken := map[string]bool{}
	collect := func(id string) {
		if id != "" {
			taken[id] = true
		}
	}
	collect(db.ID)
	for i := range db.Layers {
		layer := &db.Layers[i]
		collect(layer.ID)
		for j := range layer.FunctClasses {
			collect(layer.FunctClasses[j].ID)
		}
		for j := range layer.Services {
			collect(layer.Services[j].ID)
		}
		for j := range layer.Jobs {
			collect(layer.Jobs[j].ID)
		}
		for j := range layer.Requests {
			collect(layer.Requests[j].ID)
		}
		for j := range layer.PosResponses {
			collect(layer.PosResponses[j].ID)
		}
		for j := range layer.NegResponses {
			collect(layer.NegResponses[j].ID)
		}
		for j := range layer.AdditionalAudiences {
			collect(layer.AdditionalAudiences[j].ID)
		}
	}

	assign := func(id *string, scope, shortName string) {
		if *id != "" {
			return
		}
		candidate := shortName
		if scope != "" {
			candidate = scope + "." + shortName
		}
		if candidate == "" || taken[candidate] {
			candidate = uuid.NewString()
		}
		*id = candidate
		taken[candidate] = true
	}

	assign(&db.ID, "", db.ShortName)
	for i := range db.Layers {
		layer := &db.Layers[i]
		assign(&layer.ID, db.ShortName, layer.ShortName)
		for j := range layer.FunctClasses {
			assign(&layer.FunctClasses[j].ID, layer.ShortName, layer.FunctClasses[j].ShortName)
		}
		for j := range layer.Services {
			assign(&layer.Services[j].ID, layer.ShortName, layer.Services[j].ShortName)
		}
		for j := range layer.Jobs {
			job := &layer.Jobs[j]
			assign(&job.ID, layer.ShortName, job.ShortName)
			// output params carry an ID attribute of their own
			for k := range job.OutputParams {
				assign(&job.OutputParams[k].ID, job.ShortName, job.OutputParams[k].ShortName)
			}
		}
		for j := range layer.Requests {
			assign(&layer.Requests[j].ID, layer.ShortName, layer.Requests[j].ShortName)
		}
		for j := range layer.PosResponses {
			assign(&layer.PosResponses[j].ID, layer.ShortName, layer.PosResponses[j].ShortName)
		}
		for j := range layer.NegResponses {
			assign(&layer.NegResponses[j].ID, layer.ShortName, layer.NegResponses[j].ShortName)
		}
		for j := range layer.AdditionalAudiences {
			assign(&layer.AdditionalAudiences[j].ID, layer.ShortName, layer.AdditionalAudiences[j].ShortName)
		}
	}
}

// checkRefs verifies that every intra-document reference resolves to a
// declared id. DOP and library references point outside this model
// subset and are left to downstream tooling.
func checkRefs(db *diag.Database) error {
	functClasses := map[string]bool{}
	requests := map[string]bool{}
	posResponses := map[string]bool{}
	negResponses := map[string]bool{}
	audiences := map[string]bool{}
	for _, layer := range db.Layers {
		for _, fc := range layer.FunctClasses {
			functClasses[fc.ID] = true
		}
		for _, req := range layer.Requests {
			requests[req.ID] = true
		}
		for _, res := range layer.PosResponses {
			posResponses[res.ID] = true
		}
		for _, res := range layer.NegResponses {
			negResponses[res.ID] = true
		}
		for _, aa := range layer.AdditionalAudiences {
			audiences[aa.ID] = true
		}
	}

	for _, layer := range db.Layers {
		for _, svc := range layer.Services {
			for _, ref := range svc.FunctClassRefs {
				if !functClasses[ref] {
					return fmt.Errorf("service %s: unresolved funct class ref %q", svc.ShortName, ref)
				}
			}
			if !requests[svc.RequestRef] {
				return fmt.Errorf("service %s: unresolved request ref %q", svc.ShortName, svc.RequestRef)
			}
			for _, ref := range svc.PosResponseRefs {
				if !posResponses[ref] {
					return fmt.Errorf("service %s: unresolved pos response ref %q", svc.ShortName, ref)
				}
			}
			for _, ref := range svc.NegResponseRefs {
				if !negResponses[ref] {
					return fmt.Errorf("service %s: unresolved neg response ref %q", svc.ShortName, ref)
				}
			}
			if err := checkAudienceRefs(svc.ShortName, svc.Audience, audiences); err != nil {
				return err
			}
		}
		for _, job := range layer.Jobs {
			for _, ref := range job.FunctClassRefs {
				if !functClasses[ref] {
					return fmt.Errorf("job %s: unresolved funct class ref %q", job.ShortName, ref)
				}
			}
			if err := checkAudienceRefs(job.ShortName, job.Audience, audiences); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkAudienceRefs(owner string, a *diag.Audience, audiences map[string]bool) error {
	if a == nil {
		return nil
	}
	for _, ref := range a.EnabledAudienceRefs {
		if !audiences[ref] {
			return fmt.Errorf("%s: unresolved enabled audience ref %q", owner, ref)
		}
	}
	for _, ref := range a.DisabledAudienceRefs {
		if !audiences[ref] {
			return fmt.Errorf("%s: unresolved disabled audience ref %q", owner, ref)
		}
	}
	return nil
}
