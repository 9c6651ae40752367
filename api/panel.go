package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/coffee-shop/service"
	"github.com/beka-birhanu/coffee-shop/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Panel errors.
var (
	ErrNoSnapshot = errors.New("debug dump is not available until debug mode is enabled")
	ErrNoStore    = errors.New("panel needs a store")
)

const watcherBuffer = 8

// Dump is one serialized copy of the state tree. It is never modified after
// it has been published.
type Dump struct {
	Seq   uint64
	State *structpb.Struct
	Text  []byte
}

// Panel serializes the whole state after every dispatch while debug mode is
// on and fans the dumps out to watchers.
type Panel struct {
	store    i.GameStore
	logger   general_i.Logger
	latest   *Dump
	seq      uint64
	watchers map[chan *Dump]struct{}
	sync.RWMutex
}

// PanelConfig holds the panel dependencies.
type PanelConfig struct {
	Store  i.GameStore
	Logger general_i.Logger
}

// NewPanel subscribes a panel to the store.
func NewPanel(c *PanelConfig) (*Panel, error) {
	if c.Store == nil {
		return nil, ErrNoStore
	}
	p := &Panel{
		store:    c.Store,
		logger:   c.Logger,
		watchers: make(map[chan *Dump]struct{}),
	}
	c.Store.Subscribe(p.onDispatch)
	return p, nil
}

func (p *Panel) onDispatch() {
	s := p.store.GetState()
	if !s.Debug {
		return
	}
	if err := p.Publish(s); err != nil && p.logger != nil {
		p.logger.Error(fmt.Sprintf("publishing debug dump: %v", err))
	}
}

// Publish serializes s and hands it to every watcher. Slow watchers miss
// dumps instead of blocking the game.
func (p *Panel) Publish(s *service.State) error {
	st, err := Encode(s)
	if err != nil {
		return err
	}
	text, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
	if err != nil {
		return fmt.Errorf("formatting state: %w", err)
	}

	p.Lock()
	defer p.Unlock()
	p.seq++
	d := &Dump{Seq: p.seq, State: st, Text: text}
	p.latest = d
	for ch := range p.watchers {
		select {
		case ch <- d:
		default:
		}
	}
	return nil
}

// Latest returns the most recent dump.
func (p *Panel) Latest() (*Dump, error) {
	p.RLock()
	defer p.RUnlock()
	if p.latest == nil {
		return nil, ErrNoSnapshot
	}
	return p.latest, nil
}

// Watch registers for future dumps. The cancel func must be called to release
// the channel.
func (p *Panel) Watch() (<-chan *Dump, func()) {
	ch := make(chan *Dump, watcherBuffer)
	p.Lock()
	p.watchers[ch] = struct{}{}
	p.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.Lock()
			delete(p.watchers, ch)
			p.Unlock()
		})
	}
}

// Encode converts the state tree into a protobuf Struct.
func Encode(s *service.State) (*structpb.Struct, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling state: %w", err)
	}
	st := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, st); err != nil {
		return nil, fmt.Errorf("converting state: %w", err)
	}
	return st, nil
}
