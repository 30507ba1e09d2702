//go:build linux && !tinygo

package evdev

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"github.com/merliot/touchdeck/touch"
	"golang.org/x/sys/unix"
)

// recordSize is the kernel's input_event size on this platform: a timeval
// and 8 bytes of type, code and value
const recordSize = int(unsafe.Sizeof(unix.Timeval{})) + 8

type absInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// Linux _IOC encoding
const (
	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30

	iocRead = 2
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNRShift | size<<iocSizeShift
}

func evioCGName(n int) uintptr { return ioc(iocRead, 'E', 0x06, uintptr(n)) }
func evioCGAbs(axis int) uintptr {
	return ioc(iocRead, 'E', 0x40+uintptr(axis), unsafe.Sizeof(absInfo{}))
}

func getName(fd int) (string, error) {
	buf := make([]byte, 256)
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), evioCGName(len(buf)), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "", errno
	}
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n]), nil
}

func getAbs(fd, axis int) (absInfo, error) {
	var info absInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), evioCGAbs(axis), uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		return absInfo{}, errno
	}
	return info, nil
}

// Device is an open input device.  It satisfies touch.Sensor.
type Device struct {
	Path string
	Name string
	// Range is the axis range the kernel advertises
	Range touch.Range

	fd     int
	parser Parser
	crit   sync.Mutex
	state  State
	done   chan struct{}
}

// Find returns the first /dev/input/event* whose name looks like a
// touchscreen, or the first one with any name
func Find() (string, error) {
	paths, _ := filepath.Glob("/dev/input/event*")
	best := ""
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			continue
		}
		name, _ := getName(fd)
		unix.Close(fd)
		low := strings.ToLower(name)
		if strings.Contains(low, "touch") || strings.Contains(low, "xpt2046") ||
			strings.Contains(low, "ads7846") || strings.Contains(low, "goodix") {
			return path, nil
		}
		if best == "" && name != "" {
			best = path
		}
	}
	if best == "" {
		return "", errors.New("evdev: no input device found")
	}
	return best, nil
}

// Open opens path (or the device Find picks when path is empty) and starts
// reading events from it
func Open(path string) (*Device, error) {
	if path == "" {
		var err error
		if path, err = Find(); err != nil {
			return nil, err
		}
	}
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("evdev: open %s: %w", path, err)
	}
	d := &Device{Path: path, fd: fd, done: make(chan struct{})}
	d.parser.Size = recordSize
	d.Name, _ = getName(fd)
	d.Range = ranges(fd)
	go d.read()
	return d, nil
}

func ranges(fd int) touch.Range {
	var r touch.Range
	axis := func(mt, single int) (int, int, bool) {
		if info, err := getAbs(fd, mt); err == nil && info.Maximum > info.Minimum {
			return int(info.Minimum), int(info.Maximum), true
		}
		if info, err := getAbs(fd, single); err == nil && info.Maximum > info.Minimum {
			return int(info.Minimum), int(info.Maximum), true
		}
		return 0, 0, false
	}
	okX, okY := false, false
	r.MinX, r.MaxX, okX = axis(ABS_MT_POSITION_X, ABS_X)
	r.MinY, r.MaxY, okY = axis(ABS_MT_POSITION_Y, ABS_Y)
	if okX && okY {
		r.Samples = 1
	}
	return r
}

func (d *Device) read() {
	buf := make([]byte, 24*64)
	for {
		n, err := unix.Read(d.fd, buf)
		if err != nil || n <= 0 {
			select {
			case <-d.done:
			default:
				fmt.Printf("evdev: %s read stopped: %v\r\n", d.Path, err)
			}
			return
		}
		d.crit.Lock()
		d.parser.Feed(buf[:n], d.state.Handle)
		d.crit.Unlock()
	}
}

func (d *Device) Touched() bool {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.state.Touched()
}

func (d *Device) ReadTouchPoint() touch.Sample {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.state.Sample()
}

func (d *Device) Close() error {
	close(d.done)
	return unix.Close(d.fd)
}
