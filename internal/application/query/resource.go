// Package query implementa la capa de view-model sobre el gateway: cada
// recurso envuelve una operación de consulta y expone el triple
// {Data, Err, Loading} más Refetch, con semántica de descarte de resultados
// obsoletos (gana el último fetch arrancado, no el último en resolver).
//
// Sin caché entre instancias: cada recurso hace su fetch fresco, sin TTL ni
// deduplicación. El volumen de consultas del panel es bajo y ese contrato está
// fijado; cualquier upgrade tiene que ser explícito.
package query

import (
	"context"
	"sync"
)

// Fetcher operación de consulta que alimenta un recurso.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Snapshot estado observable de un recurso en un instante.
// En fallo, Data conserva el último valor confirmado.
type Snapshot[T any] struct {
	Data    T
	Err     error
	Loading bool
}

// Resource view-model de una consulta sin parámetros.
//
// Máquina de estados por instancia: Idle→Loading en Load; Loading→Ready al
// resolver (error limpiado); Loading→Failed al fallar (Data intacta);
// Ready/Failed→Loading en Refetch. El índice de recarga hace de generación:
// un intento solo confirma su resultado si sigue siendo el vigente y el
// recurso no se cerró.
type Resource[T any] struct {
	mu      sync.Mutex
	fetch   Fetcher[T]
	data    T
	err     error
	loading bool
	reload  int // índice de recarga; también la generación vigente
	closed  bool
}

// New construye el recurso en estado Idle; Load dispara el primer fetch.
func New[T any](fetch Fetcher[T]) *Resource[T] {
	return &Resource[T]{fetch: fetch}
}

// Load arranca un fetch asíncrono. Devuelve un canal que se cierra cuando el
// intento termina (confirmado o descartado), para que los llamadores puedan
// esperar sin polling.
func (r *Resource[T]) Load(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		close(done)
		return done
	}
	r.reload++
	gen := r.reload
	r.loading = true
	r.mu.Unlock()

	go func() {
		defer close(done)
		data, err := r.fetch(ctx)

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed || gen != r.reload {
			// Un intento más nuevo arrancó (o hubo Close): resultado descartado.
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

// Refetch incrementa el índice de recarga y vuelve a ejecutar el fetch.
func (r *Resource[T]) Refetch(ctx context.Context) <-chan struct{} {
	return r.Load(ctx)
}

// Close modela el desmontaje de la vista: los resultados en vuelo se descartan.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.loading = false
}

// Snapshot devuelve el estado actual del recurso.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[T]{Data: r.data, Err: r.err, Loading: r.loading}
}
