package repository

// Record is a value stored in a collection. Clone must return a copy that
// shares no mutable state with the receiver.
type Record[T any] interface {
	GetID() string
	Clone() T
}

// Collection is an ordered set of records keyed by id. Reads preserve
// insertion order and return copies; a missing id is reported with a
// boolean, never an error.
type Collection[T Record[T]] interface {
	Insert(record T)
	All() []T
	Find(match func(T) bool) []T
	First(match func(T) bool) (T, bool)
	Get(id string) (T, bool)
	Update(id string, mutate func(*T)) (T, bool)
	Delete(id string) bool
	Len() int
}
