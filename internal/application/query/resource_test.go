package query_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/query"
)

type resultKey struct{}

type result struct {
	data []string
	err  error
}

// blockingFetcher fetcher controlable: cada intento espera su resultado en el
// canal que viaja en el contexto, así el test decide en qué orden resuelven
// los intentos concurrentes.
type blockingFetcher struct {
	calls atomic.Int32
}

func (f *blockingFetcher) fetch(ctx context.Context) ([]string, error) {
	f.calls.Add(1)
	ch := ctx.Value(resultKey{}).(chan result)
	r := <-ch
	return r.data, r.err
}

// attempt contexto con su canal de resultado propio.
func attempt() (context.Context, chan result) {
	ch := make(chan result, 1)
	return context.WithValue(context.Background(), resultKey{}, ch), ch
}

func TestResource_IdleHastaElPrimerLoad(t *testing.T) {
	f := &blockingFetcher{}
	r := query.New(f.fetch)

	snap := r.Snapshot()
	assert.False(t, snap.Loading, "sin Load no hay fetch en vuelo")
	assert.Nil(t, snap.Err)
	assert.Empty(t, snap.Data)
	assert.Zero(t, f.calls.Load(), "el constructor no debe disparar llamadas")
}

func TestResource_LoadResuelveYLimpiaLoading(t *testing.T) {
	f := &blockingFetcher{}
	r := query.New(f.fetch)

	ctx, ch := attempt()
	done := r.Load(ctx)
	assert.True(t, r.Snapshot().Loading, "Loading debe encender durante el fetch")

	ch <- result{data: []string{"a", "b"}}
	<-done

	snap := r.Snapshot()
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.Err)
	assert.Equal(t, []string{"a", "b"}, snap.Data)
}

func TestResource_FalloConservaElUltimoDatoConfirmado(t *testing.T) {
	f := &blockingFetcher{}
	r := query.New(f.fetch)

	ctx, ch := attempt()
	done := r.Load(ctx)
	ch <- result{data: []string{"a"}}
	<-done

	ctx2, ch2 := attempt()
	done = r.Refetch(ctx2)
	ch2 <- result{err: errors.New("transporte caído")}
	<-done

	snap := r.Snapshot()
	require.Error(t, snap.Err)
	assert.Equal(t, []string{"a"}, snap.Data, "en fallo Data conserva el último valor confirmado")
	assert.False(t, snap.Loading)
}

func TestResource_RefetchExitosoLimpiaElError(t *testing.T) {
	f := &blockingFetcher{}
	r := query.New(f.fetch)

	ctx, ch := attempt()
	done := r.Load(ctx)
	ch <- result{err: errors.New("primer intento falla")}
	<-done
	require.Error(t, r.Snapshot().Err)

	ctx2, ch2 := attempt()
	done = r.Refetch(ctx2)
	ch2 <- result{data: []string{"fresca"}}
	<-done

	snap := r.Snapshot()
	assert.NoError(t, snap.Err, "un refetch exitoso limpia el error")
	assert.Equal(t, []string{"fresca"}, snap.Data)
}

func TestResource_ElIntentoObsoletoNuncaConfirma(t *testing.T) {
	f := &blockingFetcher{}
	r := query.New(f.fetch)

	staleCtx, staleCh := attempt()
	stale := r.Load(staleCtx)
	freshCtx, freshCh := attempt()
	fresh := r.Refetch(freshCtx)

	// El intento nuevo resuelve primero; el viejo llega tarde.
	freshCh <- result{data: []string{"fresca"}}
	<-fresh
	staleCh <- result{data: []string{"obsoleta"}}
	<-stale

	snap := r.Snapshot()
	assert.Equal(t, []string{"fresca"}, snap.Data,
		"gana el último fetch arrancado, no el último en resolver")
	assert.NoError(t, snap.Err)
	assert.False(t, snap.Loading)
}

func TestResource_ErrorObsoletoNoPisaElDatoFresco(t *testing.T) {
	f := &blockingFetcher{}
	r := query.New(f.fetch)

	staleCtx, staleCh := attempt()
	stale := r.Load(staleCtx)
	freshCtx, freshCh := attempt()
	fresh := r.Refetch(freshCtx)

	freshCh <- result{data: []string{"fresca"}}
	<-fresh
	staleCh <- result{err: errors.New("fallo tardío del intento viejo")}
	<-stale

	snap := r.Snapshot()
	assert.NoError(t, snap.Err, "el fallo de un intento descartado no se publica")
	assert.Equal(t, []string{"fresca"}, snap.Data)
}

func TestResource_CloseDescartaResultadosEnVuelo(t *testing.T) {
	f := &blockingFetcher{}
	r := query.New(f.fetch)

	ctx, ch := attempt()
	done := r.Load(ctx)
	r.Close()
	ch <- result{data: []string{"tardía"}}
	<-done

	snap := r.Snapshot()
	assert.Empty(t, snap.Data, "tras Close ningún resultado confirma")
	assert.False(t, snap.Loading)

	// Load sobre un recurso cerrado es un no-op que cierra el canal de inmediato.
	ctx2, _ := attempt()
	done = r.Load(ctx2)
	<-done
	assert.Equal(t, int32(1), f.calls.Load(), "un recurso cerrado no emite más llamadas")
}
