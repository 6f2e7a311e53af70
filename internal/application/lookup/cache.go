// Package lookup resuelve ids de documentos (orden de venta, orden de entrega, factura,
// recepción, nota de compra) a su número visible a partir de cinco colecciones LOV
// paginadas e independientes.
package lookup

import (
	"sync"

	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// Page entrada de caché de un tipo de documento.
// Items nunca se modifica en sitio: cada commit reemplaza el slice completo.
type Page struct {
	Items    []entity.DocumentSummary
	Page     int
	PageSize int
	Total    int
}

// Ready indica si la colección ya tiene elementos.
func (p Page) Ready() bool { return len(p.Items) > 0 }

// Snapshot copia de solo lectura del estado de la caché en un instante.
type Snapshot map[entity.DocumentType]Page

// Ready indica si todas las colecciones indicadas tienen elementos.
func (s Snapshot) Ready(types ...entity.DocumentType) bool {
	for _, t := range types {
		if !s[t].Ready() {
			return false
		}
	}
	return true
}

// Cache caché explícita de las cinco colecciones, indexada por tipo de documento.
// Cada fetch toma un ticket por tipo; solo el ticket vigente puede escribir, así una
// respuesta tardía de una página/filtro reemplazado se descarta.
type Cache struct {
	mu        sync.Mutex
	entries   map[entity.DocumentType]Page
	tickets   map[entity.DocumentType]uint64
	listeners map[int]func(entity.DocumentType)
	nextSub   int
}

// NewCache construye una caché vacía.
func NewCache() *Cache {
	return &Cache{
		entries:   make(map[entity.DocumentType]Page, len(entity.DocumentTypes)),
		tickets:   make(map[entity.DocumentType]uint64, len(entity.DocumentTypes)),
		listeners: make(map[int]func(entity.DocumentType)),
	}
}

// Begin emite un ticket nuevo para t e invalida los fetch anteriores en vuelo del mismo tipo.
func (c *Cache) Begin(t entity.DocumentType) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickets[t]++
	return c.tickets[t]
}

// Commit reemplaza la entrada de t si ticket sigue vigente. Devuelve false si la
// respuesta quedó obsoleta. Los suscriptores se notifican fuera del lock.
func (c *Cache) Commit(t entity.DocumentType, ticket uint64, page Page) bool {
	c.mu.Lock()
	if c.tickets[t] != ticket {
		c.mu.Unlock()
		return false
	}
	c.entries[t] = page
	listeners := c.listenersLocked()
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(t)
	}
	return true
}

// Invalidate vacía la entrada de t (por ejemplo al cambiar el filtro) y descarta
// cualquier fetch en vuelo de ese tipo.
func (c *Cache) Invalidate(t entity.DocumentType) {
	c.mu.Lock()
	c.tickets[t]++
	delete(c.entries, t)
	listeners := c.listenersLocked()
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(t)
	}
}

// Get devuelve la entrada actual de t (vacía si nunca se cargó).
func (c *Cache) Get(t entity.DocumentType) Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[t]
}

// Snapshot devuelve una copia del estado actual.
func (c *Cache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := make(Snapshot, len(c.entries))
	for t, p := range c.entries {
		snap[t] = p
	}
	return snap
}

// Subscribe registra fn para recibir el tipo que cambió tras cada commit o invalidación.
// Devuelve la función para cancelar la suscripción.
func (c *Cache) Subscribe(fn func(entity.DocumentType)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *Cache) listenersLocked() []func(entity.DocumentType) {
	out := make([]func(entity.DocumentType), 0, len(c.listeners))
	for _, fn := range c.listeners {
		out = append(out, fn)
	}
	return out
}
