package query_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/query"
)

// keyedBlockingFetcher versión parametrizada del fetcher controlable.
type keyedBlockingFetcher struct {
	calls atomic.Int32
	mu    sync.Mutex
	keys  []string
}

func (f *keyedBlockingFetcher) fetch(ctx context.Context, key string) (string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.keys = append(f.keys, key)
	f.mu.Unlock()
	ch := ctx.Value(resultKey{}).(chan result)
	r := <-ch
	if r.err != nil {
		return "", r.err
	}
	return r.data[0], nil
}

func TestKeyedResource_ClaveVaciaCortaEnSeco(t *testing.T) {
	f := &keyedBlockingFetcher{}
	r := query.NewKeyed(f.fetch)

	done := r.SetKey(context.Background(), "")
	<-done

	snap := r.Snapshot()
	assert.Empty(t, snap.Data, "clave vacía deja Data en el valor cero")
	assert.NoError(t, snap.Err)
	assert.False(t, snap.Loading)
	assert.Zero(t, f.calls.Load(), "clave vacía no emite ninguna llamada al gateway")
}

func TestKeyedResource_SetKeyResuelve(t *testing.T) {
	f := &keyedBlockingFetcher{}
	r := query.NewKeyed(f.fetch)

	ctx, ch := attempt()
	done := r.SetKey(ctx, "case-1")
	assert.True(t, r.Snapshot().Loading)

	ch <- result{data: []string{"G8835"}}
	<-done

	snap := r.Snapshot()
	assert.Equal(t, "G8835", snap.Data)
	assert.False(t, snap.Loading)
	assert.Equal(t, []string{"case-1"}, f.keys, "el fetch recibe la clave fijada")
}

func TestKeyedResource_CambioDeClaveInvalidaElIntentoAnterior(t *testing.T) {
	f := &keyedBlockingFetcher{}
	r := query.NewKeyed(f.fetch)

	staleCtx, staleCh := attempt()
	stale := r.SetKey(staleCtx, "case-1")
	freshCtx, freshCh := attempt()
	fresh := r.SetKey(freshCtx, "case-2")

	freshCh <- result{data: []string{"E6514"}}
	<-fresh
	staleCh <- result{data: []string{"G8835"}}
	<-stale

	snap := r.Snapshot()
	assert.Equal(t, "E6514", snap.Data,
		"el resultado de la clave anterior nunca pisa al de la clave vigente")
}

func TestKeyedResource_VaciarLaClaveDescartaElFetchEnVuelo(t *testing.T) {
	f := &keyedBlockingFetcher{}
	r := query.NewKeyed(f.fetch)

	staleCtx, staleCh := attempt()
	stale := r.SetKey(staleCtx, "case-1")
	done := r.SetKey(context.Background(), "")
	<-done

	snap := r.Snapshot()
	assert.Empty(t, snap.Data)
	assert.False(t, snap.Loading, "vaciar la clave apaga Loading de inmediato")

	staleCh <- result{data: []string{"tardía"}}
	<-stale
	assert.Empty(t, r.Snapshot().Data, "el resultado tardío queda descartado")
}

func TestKeyedResource_RefetchReutilizaLaClaveVigente(t *testing.T) {
	f := &keyedBlockingFetcher{}
	r := query.NewKeyed(f.fetch)

	ctx, ch := attempt()
	done := r.SetKey(ctx, "doc-1")
	ch <- result{data: []string{"v1"}}
	<-done

	ctx2, ch2 := attempt()
	done = r.Refetch(ctx2)
	ch2 <- result{data: []string{"v2"}}
	<-done

	snap := r.Snapshot()
	assert.Equal(t, "v2", snap.Data)
	assert.Equal(t, []string{"doc-1", "doc-1"}, f.keys, "Refetch repite la clave vigente")
}

func TestKeyedResource_FalloPublicaElError(t *testing.T) {
	f := &keyedBlockingFetcher{}
	r := query.NewKeyed(f.fetch)

	ctx, ch := attempt()
	done := r.SetKey(ctx, "case-1")
	ch <- result{err: errors.New("gateway caído")}
	<-done

	snap := r.Snapshot()
	require.Error(t, snap.Err)
	assert.False(t, snap.Loading)
}

func TestKeyedResource_CloseDescarta(t *testing.T) {
	f := &keyedBlockingFetcher{}
	r := query.NewKeyed(f.fetch)

	ctx, ch := attempt()
	done := r.SetKey(ctx, "case-1")
	r.Close()
	ch <- result{data: []string{"tardía"}}
	<-done

	assert.Empty(t, r.Snapshot().Data)

	done = r.SetKey(context.Background(), "case-2")
	<-done
	assert.Equal(t, int32(1), f.calls.Load(), "un recurso cerrado no emite más llamadas")
}
