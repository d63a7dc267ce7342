package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/antigloss/go/logger"
	dlog "github.com/d2r2/go-logger"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/ssd1306"
	"github.com/BeatGlow/ssd1306/internal/debounce"
	"github.com/BeatGlow/ssd1306/internal/ui"
)

const debounceTime = 200 * time.Millisecond

func main() {
	widthFlag := flag.Int("width", ssd1306.DefaultConfig.Width, "Display width")
	heightFlag := flag.Int("height", ssd1306.DefaultConfig.Height, "Display height")
	externalVCCFlag := flag.Bool("external-vcc", false, "Panel voltage is supplied externally")
	i2cDeviceFlag := flag.Int("i2c-dev", ssd1306.DefaultI2CConfig.Device, "I²C bus number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(ssd1306.DefaultConfig.Addr), "I²C device address")
	i2cSpeedFlag := flag.Int("i2c-khz", int(ssd1306.DefaultI2CConfig.Speed/physic.KiloHertz), "I²C bus clock in kHz")
	sysfsFlag := flag.Bool("sysfs", false, "Use /dev/i2c-N directly instead of periph.io")
	buttonAFlag := flag.String("button-a", "GPIO5", "Button A GPIO pin (green LED)")
	buttonBFlag := flag.String("button-b", "GPIO6", "Button B GPIO pin (blue LED)")
	greenFlag := flag.String("led-green", "GPIO11", "Green LED GPIO pin")
	blueFlag := flag.String("led-blue", "GPIO12", "Blue LED GPIO pin")
	ttfFlag := flag.String("ttf", "", "TrueType font for the splash screen")
	logDirFlag := flag.String("log-dir", filepath.Join(os.TempDir(), "oled-demo"), "Log directory")
	verboseFlag := flag.Bool("verbose", false, "Trace every bus transaction")
	flag.Parse()

	if err := logger.Init(*logDirFlag, 30, 2, 10, true); err != nil {
		fatal(err)
	}
	if *verboseFlag {
		for _, name := range []string{"ssd1306", "conn", "ui"} {
			if err := dlog.ChangePackageLogLevel(name, dlog.DebugLevel); err != nil {
				logger.Warn("log level of %s: %v", name, err)
			}
		}
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	bus, err := ssd1306.OpenI2C(&ssd1306.I2CConfig{
		Device: *i2cDeviceFlag,
		Speed:  physic.Frequency(*i2cSpeedFlag) * physic.KiloHertz,
		Sysfs:  *sysfsFlag,
		Addr:   uint8(*i2cAddrFlag),
	})
	if err != nil {
		fatal(err)
	}
	defer bus.Close()
	logger.Info("using connection: %s", bus)

	display, err := ssd1306.New(bus, &ssd1306.Config{
		Width:       *widthFlag,
		Height:      *heightFlag,
		ExternalVCC: *externalVCCFlag,
		Addr:        uint8(*i2cAddrFlag),
	})
	if err != nil {
		fatal(err)
	}
	if err = display.Configure(); err != nil {
		fatal(err)
	}
	defer display.Close()
	logger.Info("using driver: %s", display)

	if err = splash(display, *ttfFlag); err != nil {
		fatal(err)
	}

	green, err := outputPin(*greenFlag)
	if err != nil {
		fatal(err)
	}
	blue, err := outputPin(*blueFlag)
	if err != nil {
		fatal(err)
	}

	panel := ui.New(display, green, blue)
	if err = panel.Start(); err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		events = make(chan ui.Event, 16)
		allow  = debounce.New(debounceTime)
	)
	for _, button := range []struct {
		name string
		kind ui.Kind
	}{
		{*buttonAFlag, ui.ButtonA},
		{*buttonBFlag, ui.ButtonB},
	} {
		pin, err := inputPin(button.name)
		if err != nil {
			fatal(err)
		}
		go watchButton(ctx, pin, button.kind, allow, events)
	}
	go readKeys(ctx, os.Stdin, events)

	fmt.Println("type digits to show them, press the buttons to toggle the LEDs, hit control-c to stop...")
	if err = panel.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
	logger.Info("stopped")
}

// splash shows the driver name for a moment.
func splash(display *ssd1306.Device, ttf string) error {
	var face font.Face = basicfont.Face7x13
	if ttf != "" {
		data, err := os.ReadFile(ttf)
		if err != nil {
			return err
		}
		if face, err = ssd1306.LoadFace(data, 12); err != nil {
			return err
		}
		defer face.Close()
	}

	display.Clear()
	if err := display.Rect(0, 0, display.Width(), display.Height(), true, false); err != nil {
		return err
	}
	if err := display.DrawText(face, "SSD1306", image.Pt(4, display.Height()/2+4)); err != nil {
		return err
	}
	if err := display.Flush(); err != nil {
		return err
	}
	time.Sleep(time.Second)
	return nil
}

func outputPin(name string) (gpio.PinOut, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("invalid GPIO pin %q", name)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, err
	}
	return pin, nil
}

func inputPin(name string) (gpio.PinIO, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("invalid GPIO pin %q", name)
	}
	if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, err
	}
	return pin, nil
}

// watchButton turns falling edges into events. Edges are only queued here,
// drawing happens in the panel loop.
func watchButton(ctx context.Context, pin gpio.PinIn, kind ui.Kind, allow func() bool, events chan<- ui.Event) {
	for ctx.Err() == nil {
		if !pin.WaitForEdge(time.Second) || !allow() {
			continue
		}
		logger.Trace("%s pressed on %s", kind, pin)
		select {
		case events <- ui.Event{Kind: kind}:
		case <-ctx.Done():
			return
		}
	}
}

func readKeys(ctx context.Context, r io.Reader, events chan<- ui.Event) {
	in := bufio.NewReader(r)
	for {
		c, _, err := in.ReadRune()
		if err != nil {
			if err != io.EOF {
				logger.Error("reading input: %v", err)
			}
			return
		}
		select {
		case events <- ui.Event{Kind: ui.Key, Key: c}:
		case <-ctx.Done():
			return
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
