package device

// Buffer is a typed device-resident array. On CPUBackend it is backed
// directly by a Go slice; on a real accelerator it would stand for
// device VRAM reached only through Upload/Download. Buffer is a generic
// type rather than a Backend method because Go methods cannot carry
// their own type parameters — allocation is a free function instead.
type Buffer[T any] struct {
	data []T
}

// NewBuffer allocates a zero-valued Buffer of length n.
func NewBuffer[T any](n int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, n)}
}

// Len returns the buffer's element count.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Upload copies host into the buffer, starting at index 0. host must fit
// within the buffer's length.
func (b *Buffer[T]) Upload(host []T) { copy(b.data, host) }

// Download copies the buffer's contents into host. host must be at
// least Len() long.
func (b *Buffer[T]) Download(host []T) { copy(host, b.data) }

// At returns the element at i.
func (b *Buffer[T]) At(i int) T { return b.data[i] }

// Set assigns the element at i.
func (b *Buffer[T]) Set(i int, v T) { b.data[i] = v }

// Slice downloads the half-open range [lo,hi) as a host-visible slice.
// On CPUBackend this is a direct view into the buffer's own storage (no
// copy, since host and device memory are the same); a real accelerator
// backend would have to copy device memory back to host here instead.
func (b *Buffer[T]) Slice(lo, hi int) []T { return b.data[lo:hi] }
