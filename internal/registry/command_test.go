package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommand(t *testing.T) {
	s := New()

	record, err := s.CreateCommand("deploy", "prism deploy --all")
	require.NoError(t, err)
	assert.Equal(t, "deploy", record.Name)
	assert.Equal(t, "prism deploy --all", record.CommandLine)
	assert.Equal(t, CommandTypeSystem, record.Type)
	assert.Equal(t, StatusPending, record.Status)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestCreateCommandWithOptions(t *testing.T) {
	s := New()

	record, err := s.CreateCommand("sync", "prism sync",
		WithCommandType(CommandTypeData),
		WithCommandMetadata("owner", "ops"))
	require.NoError(t, err)
	assert.Equal(t, CommandTypeData, record.Type)
	assert.Equal(t, "ops", record.Metadata["owner"])
}

func TestCreateCommandDuplicateKeepsFirst(t *testing.T) {
	s := New()

	_, err := s.CreateCommand("deploy", "first")
	require.NoError(t, err)

	_, err = s.CreateCommand("deploy", "second", WithCommandType(CommandTypePipeline))
	require.Error(t, err)
	assert.True(t, IsDuplicateRegistration(err))
	assert.Contains(t, err.Error(), `command "deploy" already registered`)

	// The original registration is untouched.
	record, err := s.GetCommand("deploy")
	require.NoError(t, err)
	assert.Equal(t, "first", record.CommandLine)
	assert.Equal(t, CommandTypeSystem, record.Type)
}

func TestGetCommandNotFound(t *testing.T) {
	s := New()

	_, err := s.GetCommand("missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsDuplicateRegistration(err))
}

func TestUpdateCommandStatus(t *testing.T) {
	s := New()
	_, err := s.CreateCommand("deploy", "prism deploy")
	require.NoError(t, err)

	tests := []struct {
		name    string
		status  CommandStatus
		wantErr bool
	}{
		{name: "running", status: StatusRunning},
		{name: "completed", status: StatusCompleted},
		{name: "failed", status: StatusFailed},
		{name: "cancelled", status: StatusCancelled},
		{name: "back to pending", status: StatusPending},
		{name: "unknown status", status: CommandStatus("exploded"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.UpdateCommandStatus("deploy", tt.status)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			record, err := s.GetCommand("deploy")
			require.NoError(t, err)
			assert.Equal(t, tt.status, record.Status)
		})
	}
}

func TestUpdateCommandStatusNotFound(t *testing.T) {
	s := New()

	err := s.UpdateCommandStatus("missing", StatusRunning)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCommandRecordsAreDefensiveCopies(t *testing.T) {
	s := New()
	record, err := s.CreateCommand("deploy", "prism deploy", WithCommandMetadata("owner", "ops"))
	require.NoError(t, err)

	// Mutating the returned record does not leak into the registry.
	record.Status = StatusFailed
	record.Metadata["owner"] = "tampered"

	stored, err := s.GetCommand("deploy")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, stored.Status)
	assert.Equal(t, "ops", stored.Metadata["owner"])

	// The Commands snapshot is equally detached.
	snapshot := s.Commands()
	delete(snapshot, "deploy")
	_, err = s.GetCommand("deploy")
	assert.NoError(t, err)
}
