package query

import (
	"context"
	"sync"
)

// KeyedFetcher operación de consulta parametrizada por clave (id de caso, de doctor...).
type KeyedFetcher[T any] func(ctx context.Context, key string) (T, error)

// KeyedResource view-model de una consulta parametrizada.
//
// Una clave vacía corta en seco: Data queda en el valor cero, Loading=false y
// no se emite ninguna llamada al gateway. Un cambio de clave antes de que el
// fetch anterior resuelva invalida ese intento (mismo descarte de obsoletos
// que Resource).
type KeyedResource[T any] struct {
	mu      sync.Mutex
	fetch   KeyedFetcher[T]
	key     string
	data    T
	err     error
	loading bool
	reload  int
	closed  bool
}

// NewKeyed construye el recurso parametrizado en estado Idle.
func NewKeyed[T any](fetch KeyedFetcher[T]) *KeyedResource[T] {
	return &KeyedResource[T]{fetch: fetch}
}

// SetKey fija el parámetro y dispara el fetch correspondiente.
func (r *KeyedResource[T]) SetKey(ctx context.Context, key string) <-chan struct{} {
	done := make(chan struct{})

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		close(done)
		return done
	}
	r.key = key
	r.reload++
	gen := r.reload

	if key == "" {
		var zero T
		r.data = zero
		r.err = nil
		r.loading = false
		r.mu.Unlock()
		close(done)
		return done
	}

	r.loading = true
	r.mu.Unlock()

	go func() {
		defer close(done)
		data, err := r.fetch(ctx, key)

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed || gen != r.reload {
			return
		}
		r.loading = false
		if err != nil {
			r.err = err
			return
		}
		r.data = data
		r.err = nil
	}()
	return done
}

// Refetch vuelve a ejecutar el fetch con la clave vigente (mismo corte con clave vacía).
func (r *KeyedResource[T]) Refetch(ctx context.Context) <-chan struct{} {
	r.mu.Lock()
	key := r.key
	r.mu.Unlock()
	return r.SetKey(ctx, key)
}

// Close modela el desmontaje de la vista.
func (r *KeyedResource[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.loading = false
}

// Snapshot devuelve el estado actual del recurso.
func (r *KeyedResource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[T]{Data: r.data, Err: r.err, Loading: r.loading}
}
