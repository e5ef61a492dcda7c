package chat

import "errors"

var (
	ErrReferenceAmbiguous      = errors.New("task reference is ambiguous")
	ErrReferenceNotFound       = errors.New("task reference not found")
	ErrSlotMissing             = errors.New("required slot missing")
	ErrIntentUnrecognized      = errors.New("intent unrecognized")
	ErrClassificationTimeout   = errors.New("classification timed out")
	ErrClassificationMalformed = errors.New("classification output malformed")
	ErrEmptyUtterance          = errors.New("utterance is empty")

	// ErrUnvalidatedDispatch indicates a programming defect: dispatch was
	// invoked with an unresolved reference, bypassing validation. It is
	// never folded into a user-facing reply.
	ErrUnvalidatedDispatch = errors.New("dispatch called with unresolved reference")
)
