package main

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/muxable/hcicodec/pkg/hci"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type printer struct {
	w    io.Writer
	yaml bool
}

type record struct {
	Event  string `yaml:"event,omitempty"`
	Fields any    `yaml:"fields,omitempty"`
	Error  string `yaml:"error,omitempty"`
	Frame  string `yaml:"frame,omitempty"`
}

// eventName is the Go type name of ev, or of the vendor payload it wraps.
func eventName(ev hci.Event) string {
	var v any = ev
	if ve, ok := ev.(*hci.VendorEvent); ok {
		v = ve.Event
	}
	if v == nil {
		return "VendorEvent"
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func fields(v any) any {
	if ve, ok := v.(*hci.VendorEvent); ok {
		v = ve.Event
	}
	if v == nil {
		return nil
	}
	return reflect.Indirect(reflect.ValueOf(v)).Interface()
}

func (p printer) event(ev hci.Event) error {
	if p.yaml {
		return p.emit(record{Event: eventName(ev), Fields: ev})
	}
	if nocp, ok := ev.(*hci.NumberOfCompletedPackets); ok {
		var b strings.Builder
		for r := range nocp.All() {
			fmt.Fprintf(&b, " {ConnectionHandle:%d NumCompletedPackets:%d}", r.ConnectionHandle, r.NumCompletedPackets)
		}
		_, err := fmt.Fprintf(p.w, "%s %d%s\n", eventName(ev), nocp.Len(), b.String())
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s %+v\n", eventName(ev), fields(ev))
	return err
}

func (p printer) failure(err error) error {
	var frame []byte
	var de *hci.DecodeError
	if errors.As(err, &de) {
		frame = de.Frame
	}
	if p.yaml {
		return p.emit(record{Error: err.Error(), Frame: fmt.Sprintf("%x", frame)})
	}
	_, werr := fmt.Fprintf(p.w, "error: %v (frame %x)\n", err, frame)
	return werr
}

func (p printer) bytes(b []byte) error {
	if p.yaml {
		return p.emit(map[string]string{"packet": fmt.Sprintf("%x", b)})
	}
	_, err := fmt.Fprintf(p.w, "%x\n", b)
	return err
}

func (p printer) emit(v any) error {
	enc := yaml.NewEncoder(p.w)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return enc.Close()
}
