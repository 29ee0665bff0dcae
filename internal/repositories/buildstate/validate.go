package buildstate

import "github.com/KirkDiggler/tft-notebook/internal/errors"

const (
	errProfileEmpty = "profile cannot be empty"
	errSnapshotNil  = "snapshot cannot be nil"
)

func validateLoad(input LoadInput) error {
	if input.Profile == "" {
		return errors.InvalidArgument(errProfileEmpty)
	}
	return nil
}

func validateSave(input SaveInput) error {
	if input.Profile == "" {
		return errors.InvalidArgument(errProfileEmpty)
	}
	if input.Snapshot == nil {
		return errors.InvalidArgument(errSnapshotNil)
	}
	return nil
}
