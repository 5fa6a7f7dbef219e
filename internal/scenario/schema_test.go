package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FullLifecycleFixture(t *testing.T) {
	s, err := Load("testdata/full_lifecycle.yaml")
	require.NoError(t, err)

	assert.Equal(t, "dashboard rebuild from posting to certificate", s.Name)
	require.Len(t, s.Steps, 13)
	assert.Equal(t, ActionCreateProject, s.Steps[0].Action)
	require.NotNil(t, s.Steps[0].NewProject)
	assert.Equal(t, []string{"React", "TypeScript"}, s.Steps[0].NewProject.Skills)
	require.NotNil(t, s.Steps[5].Amount)
	assert.Equal(t, 1200.0, *s.Steps[5].Amount)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestParse_RejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte(`
steps:
  - action: release
    project: p1
    colour: blue
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no steps",
			yaml:    "name: empty\nsteps: []\n",
			wantErr: "steps",
		},
		{
			name:    "unknown action",
			yaml:    "steps:\n  - action: teleport\n    project: p1\n",
			wantErr: "steps[0].action",
		},
		{
			name:    "apply without candidate",
			yaml:    "steps:\n  - action: apply\n    project: p1\n    cover_letter: hi\n",
			wantErr: "apply requires candidate",
		},
		{
			name:    "fund without amount",
			yaml:    "steps:\n  - action: fund\n    project: p1\n",
			wantErr: "fund requires amount",
		},
		{
			name:    "rating out of range",
			yaml:    "steps:\n  - action: approve\n    project: p1\n    rating: 9\n    comment: ok\n",
			wantErr: "rating",
		},
		{
			name: "new project with bad type",
			yaml: `
steps:
  - action: create_project
    new_project:
      organization_id: org-1
      title: T
      type: full-time
`,
			wantErr: "new_project.type",
		},
		{
			name:    "bad pitch url",
			yaml:    "steps:\n  - action: apply\n    project: p1\n    candidate: c\n    cover_letter: hi\n    video_pitch_url: not a url\n",
			wantErr: "video_pitch_url",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsEveryMissingField(t *testing.T) {
	s := &Script{Steps: []Step{
		{Action: ActionApprove},
		{Action: ActionAccept, Project: "p1"},
	}}
	err := s.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "steps[0]: approve requires project")
	assert.Contains(t, msg, "steps[0]: approve requires rating")
	assert.Contains(t, msg, "steps[0]: approve requires comment")
	assert.Contains(t, msg, "steps[1]: accept requires application")
}

func TestStepMissing_SubmitNeedsOnlyProject(t *testing.T) {
	assert.Empty(t, Step{Action: ActionSubmit, Project: "p1"}.missing())
	assert.Equal(t, []string{"project"}, Step{Action: ActionSubmit}.missing())
}
