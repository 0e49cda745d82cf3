package crt

// EmptyContainer - Custom error to inform that an operation was attempted on an empty container
type EmptyContainer struct {
	msg string
}

// Error - Used to notify that the container is empty
func (E EmptyContainer) Error() string {
	if E.msg == "" {
		return "container is empty"
	}
	return E.msg
}

// ContainerFull - Custom error to inform that a bounded container has reached its capacity
type ContainerFull struct {
	msg string
}

// Error - Used to notify that the container is full
func (E ContainerFull) Error() string {
	if E.msg == "" {
		return "container is full"
	}
	return E.msg
}

// NotFound - Custom error to inform that no entry matching a given key or value was found
type NotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "no entry found"
	}
	return E.msg
}

// OutOfRange - Custom error to inform that a given index is outside the valid range of a container
type OutOfRange struct {
	msg string
}

// Error - Used to notify that an index is out of range
func (E OutOfRange) Error() string {
	if E.msg == "" {
		return "index out of range"
	}
	return E.msg
}
