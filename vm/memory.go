package vm

// Universe is the memory universe: array 0 (the program currently
// executing) plus every other active array, keyed by a non-zero
// identifier. Identifier allocation uses a free list fused with a
// monotonically advancing high-water mark, giving amortised O(1)
// alloc and free instead of the naive "scan for an unused id" scheme
// the reference design starts from.
type Universe struct {
	array0   []uint32
	arrays   map[uint32][]uint32
	freeList []uint32
	nextID   uint32
}

// NewUniverse builds a memory universe whose array 0 is a copy of
// initial. Array 0 always exists and is never itself freeable.
func NewUniverse(initial []uint32) *Universe {
	array0 := make([]uint32, len(initial))
	copy(array0, initial)
	return &Universe{
		array0: array0,
		arrays: make(map[uint32][]uint32),
		nextID: 1,
	}
}

// Alloc returns a fresh, currently-inactive non-zero identifier bound
// to a new zero-initialised array of length n.
func (u *Universe) Alloc(n uint32) (id uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			id, err = 0, ErrAllocFailed
		}
	}()

	if k := len(u.freeList); k > 0 {
		id = u.freeList[k-1]
		u.freeList = u.freeList[:k-1]
	} else {
		if u.nextID == 0 {
			return 0, ErrIDSpaceExhausted
		}
		id = u.nextID
		u.nextID++
	}

	u.arrays[id] = make([]uint32, n)
	return id, nil
}

// Free releases id, making it eligible for reuse by a later Alloc.
func (u *Universe) Free(id uint32) error {
	if id == 0 {
		return ErrFreeProgramArray
	}
	if _, ok := u.arrays[id]; !ok {
		return ErrDoubleFree
	}
	delete(u.arrays, id)
	u.freeList = append(u.freeList, id)
	return nil
}

// Read returns the word at offset off in array id.
func (u *Universe) Read(id, off uint32) (uint32, error) {
	arr, err := u.arrayFor(id)
	if err != nil {
		return 0, err
	}
	if off >= uint32(len(arr)) {
		return 0, ErrOffsetOutOfBounds
	}
	return arr[off], nil
}

// Write stores val at offset off in array id. Writing through id 0
// mutates the currently executing program in place.
func (u *Universe) Write(id, off, val uint32) error {
	arr, err := u.arrayFor(id)
	if err != nil {
		return err
	}
	if off >= uint32(len(arr)) {
		return ErrOffsetOutOfBounds
	}
	arr[off] = val
	return nil
}

func (u *Universe) arrayFor(id uint32) ([]uint32, error) {
	if id == 0 {
		return u.array0, nil
	}
	arr, ok := u.arrays[id]
	if !ok {
		return nil, ErrInactiveArray
	}
	return arr, nil
}

// LoadProgram replaces array 0 with a copy of array id, so that later
// writes to id do not disturb the code now running. Callers are
// responsible for the id == 0 no-op case (no copy, pointer only).
func (u *Universe) LoadProgram(id uint32) error {
	arr, ok := u.arrays[id]
	if !ok {
		return ErrInactiveArray
	}
	cp := make([]uint32, len(arr))
	copy(cp, arr)
	u.array0 = cp
	return nil
}

// FetchInstruction returns the word at array-0 offset pc, or traps if
// pc has run past the end of the program.
func (u *Universe) FetchInstruction(pc uint32) (uint32, error) {
	if pc >= uint32(len(u.array0)) {
		return 0, ErrPointerOverrun
	}
	return u.array0[pc], nil
}

// Active reports whether id currently names a live array. Array 0 is
// always active.
func (u *Universe) Active(id uint32) bool {
	if id == 0 {
		return true
	}
	_, ok := u.arrays[id]
	return ok
}

// ArrayLen reports the length of array id, or 0 if inactive.
func (u *Universe) ArrayLen(id uint32) int {
	if id == 0 {
		return len(u.array0)
	}
	return len(u.arrays[id])
}
