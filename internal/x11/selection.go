package x11

import (
	"bytes"
	"context"
	"math"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/pkg/errors"
)

// ErrSelectionEmpty means no selection owner could provide any of the
// requested targets.
var ErrSelectionEmpty = errors.New("selection has no usable content")

// selectionProperty is the property on our window that receives the data.
const selectionProperty = "SHOWIMG_SELECTION"

// ReadSelection asks the owner of selection (PRIMARY or CLIPBOARD) for the
// first available of targets, in order, and returns the data with the
// target that produced it. It uses a private connection and window so it
// can run before the viewer exists. Large transfers use the INCR protocol.
// Cancel ctx to bound the wait on an unresponsive owner.
func ReadSelection(ctx context.Context, selection string, targets []string) ([]byte, string, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, "", errors.Wrap(err, "connect to X server")
	}
	defer xu.Conn().Close()

	win, err := xwindow.Generate(xu)
	if err != nil {
		return nil, "", errors.Wrap(err, "allocate window id")
	}
	err = win.CreateChecked(xu.RootWin(), -1, -1, 1, 1,
		xproto.CwEventMask, xproto.EventMaskPropertyChange)
	if err != nil {
		return nil, "", errors.Wrap(err, "create selection window")
	}
	defer win.Destroy()

	selAtom, err := xprop.Atm(xu, selection)
	if err != nil {
		return nil, "", err
	}
	propAtom, err := xprop.Atm(xu, selectionProperty)
	if err != nil {
		return nil, "", err
	}
	incrAtom, err := xprop.Atm(xu, "INCR")
	if err != nil {
		return nil, "", err
	}

	done := make(chan struct{})
	defer close(done)
	events := pumpEvents(xu.Conn(), done)

	r := &selectionRequest{
		conn:   xu.Conn(),
		win:    win.Id,
		prop:   propAtom,
		incr:   incrAtom,
		events: events,
	}
	for _, name := range targets {
		target, err := xprop.Atm(xu, name)
		if err != nil {
			return nil, "", err
		}
		data, err := r.convert(ctx, selAtom, target)
		if err != nil {
			return nil, "", errors.Wrapf(err, "read %s as %s", selection, name)
		}
		if len(data) > 0 {
			return data, name, nil
		}
	}
	return nil, "", ErrSelectionEmpty
}

type selectionRequest struct {
	conn   *xgb.Conn
	win    xproto.Window
	prop   xproto.Atom
	incr   xproto.Atom
	events <-chan xgb.Event
}

// convert performs one ConvertSelection round. A refused conversion yields
// no data and no error.
func (r *selectionRequest) convert(ctx context.Context, selection, target xproto.Atom) ([]byte, error) {
	xproto.ConvertSelection(r.conn, r.win, selection, target, r.prop, xproto.TimeCurrentTime)

	ev, err := r.wait(ctx, func(ev xgb.Event) bool {
		sn, ok := ev.(xproto.SelectionNotifyEvent)
		return ok && sn.Requestor == r.win && sn.Target == target
	})
	if err != nil {
		return nil, err
	}
	if ev.(xproto.SelectionNotifyEvent).Property == xproto.AtomNone {
		return nil, nil
	}
	return r.readProperty(ctx)
}

// readProperty reads and deletes the transfer property, following the
// ICCCM incremental protocol when the owner announces INCR.
func (r *selectionRequest) readProperty(ctx context.Context) ([]byte, error) {
	reply, err := r.getProperty()
	if err != nil {
		return nil, err
	}
	if reply.Type != r.incr {
		return reply.Value, nil
	}

	// Deleting the INCR property asked the owner for the first chunk. Each
	// chunk is acknowledged by deleting it; an empty chunk ends the transfer.
	var buf bytes.Buffer
	for {
		_, err := r.wait(ctx, func(ev xgb.Event) bool {
			pn, ok := ev.(xproto.PropertyNotifyEvent)
			return ok && pn.Window == r.win && pn.Atom == r.prop && pn.State == xproto.PropertyNewValue
		})
		if err != nil {
			return nil, err
		}
		reply, err := r.getProperty()
		if err != nil {
			return nil, err
		}
		if reply.ValueLen == 0 {
			return buf.Bytes(), nil
		}
		buf.Write(reply.Value)
	}
}

func (r *selectionRequest) getProperty() (*xproto.GetPropertyReply, error) {
	reply, err := xproto.GetProperty(r.conn, true, r.win, r.prop,
		xproto.GetPropertyTypeAny, 0, math.MaxUint32).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "get selection property")
	}
	return reply, nil
}

func (r *selectionRequest) wait(ctx context.Context, match func(xgb.Event) bool) (xgb.Event, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ev, ok := <-r.events:
			if !ok {
				return nil, errors.New("X connection closed")
			}
			if match(ev) {
				return ev, nil
			}
		}
	}
}

// pumpEvents forwards events from conn until it is closed or done is.
func pumpEvents(conn *xgb.Conn, done <-chan struct{}) <-chan xgb.Event {
	ch := make(chan xgb.Event)
	go func() {
		defer close(ch)
		for {
			ev, err := conn.WaitForEvent()
			if ev == nil && err == nil {
				return
			}
			if ev == nil {
				continue
			}
			select {
			case ch <- ev:
			case <-done:
				return
			}
		}
	}()
	return ch
}
