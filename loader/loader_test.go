package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const engineYAML = `
short_name: Engine
layers:
  - short_name: EngineECU
    funct_classes:
      - id: FC.FaultMemory
        short_name: FaultMemory
    additional_audiences:
      - id: AUD.Dealer
        short_name: Dealer
    services:
      - short_name: Read_DTC
        semantic: FAULTREAD
        funct_class_refs: [FC.FaultMemory]
        audience:
          enabled_audience_refs: [AUD.Dealer]
        request_ref: RQ.ReadDTC
        pos_response_refs: [PR.ReadDTC]
    requests:
      - id: RQ.ReadDTC
        short_name: RQ_Read_DTC
    pos_responses:
      - id: PR.ReadDTC
        short_name: PR_Read_DTC
`

func TestLoadDatabaseFromBytes_YAML(t *testing.T) {
	db, err := LoadDatabaseFromBytes([]byte(engineYAML), "yaml")
	require.NoError(t, err)

	require.Len(t, db.Layers, 1)
	layer := db.Layers[0]
	require.Len(t, layer.Services, 1)

	svc := layer.Services[0]
	assert.Equal(t, "Read_DTC", svc.ShortName)
	assert.Equal(t, "RQ.ReadDTC", svc.RequestRef)
	assert.Equal(t, []string{"FC.FaultMemory"}, svc.FunctClassRefs)
	require.NotNil(t, svc.Audience)
	assert.Equal(t, []string{"AUD.Dealer"}, svc.Audience.EnabledAudienceRefs)
}

func TestLoadDatabaseFromBytes_AssignsIDs(t *testing.T) {
	db, err := LoadDatabaseFromBytes([]byte(engineYAML), "yaml")
	require.NoError(t, err)

	assert.Equal(t, "Engine", db.ID)
	assert.Equal(t, "Engine.EngineECU", db.Layers[0].ID)
	assert.Equal(t, "EngineECU.Read_DTC", db.Layers[0].Services[0].ID)
	// explicitly authored ids are kept
	assert.Equal(t, "RQ.ReadDTC", db.Layers[0].Requests[0].ID)
}

func TestLoadDatabaseFromBytes_IDCollisionFallsBackToUUID(t *testing.T) {
	collision := strings.Replace(engineYAML,
		"      - id: RQ.ReadDTC\n        short_name: RQ_Read_DTC",
		"      - id: EngineECU.Read_DTC\n        short_name: RQ_Read_DTC", 1)
	collision = strings.Replace(collision, "request_ref: RQ.ReadDTC", "request_ref: EngineECU.Read_DTC", 1)

	db, err := LoadDatabaseFromBytes([]byte(collision), "yaml")
	require.NoError(t, err)

	svcID := db.Layers[0].Services[0].ID
	assert.NotEqual(t, "EngineECU.Read_DTC", svcID, "colliding generated id must be replaced")
	assert.NotEmpty(t, svcID)
	assert.Len(t, svcID, 36, "fallback id should be a UUID")
}

func TestLoadDatabaseFromBytes_JSON(t *testing.T) {
	data := `{
		"short_name": "Engine",
		"layers": [{
			"short_name": "EngineECU",
			"services": [{
				"short_name": "Session_Control",
				"request_ref": "RQ.Session"
			}],
			"requests": [{"id": "RQ.Session", "short_name": "RQ_Session"}]
		}]
	}`
	db, err := LoadDatabaseFromBytes([]byte(data), "json")
	require.NoError(t, err)
	assert.Equal(t, "Session_Control", db.Layers[0].Services[0].ShortName)
}

func TestLoadDatabaseFromBytes_UnresolvedRef(t *testing.T) {
	broken := strings.Replace(engineYAML, "request_ref: RQ.ReadDTC", "request_ref: RQ.Missing", 1)
	_, err := LoadDatabaseFromBytes([]byte(broken), "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unresolved request ref")
}

func TestLoadDatabaseFromBytes_UnresolvedAudienceRef(t *testing.T) {
	broken := strings.Replace(engineYAML, "enabled_audience_refs: [AUD.Dealer]", "enabled_audience_refs: [AUD.Nobody]", 1)
	_, err := LoadDatabaseFromBytes([]byte(broken), "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unresolved enabled audience ref")
}

func TestLoadDatabaseFromBytes_ValidationFailure(t *testing.T) {
	missingShortName := strings.Replace(engineYAML, "short_name: Engine", "long_name: Engine ECU", 1)
	_, err := LoadDatabaseFromBytes([]byte(missingShortName), "yaml")
	require.Error(t, err)
}

func TestLoadDatabase_MissingFile(t *testing.T) {
	_, err := LoadDatabase("does-not-exist.yml")
	require.Error(t, err)
}
