package port

import "gototest/internal/domain"

// JumpRecorder stores completed jumps.
type JumpRecorder interface {
	Record(jump domain.Jump) error
}

type JumpHistory interface {
	JumpRecorder

	Recent(limit int) ([]domain.Jump, error)

	Clear() error

	Close() error
}
