package duetvm

import "errors"

var (
	ErrStepLimit      = errors.New("step limit exceeded")
	ErrQueueUnderflow = errors.New("receive from empty queue")
)
