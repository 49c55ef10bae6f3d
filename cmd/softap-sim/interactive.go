package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/softap-project/softap-go/pkg/ap"
	"github.com/softap-project/softap-go/pkg/auth"
	"github.com/softap-project/softap-go/pkg/timer"
	"github.com/softap-project/softap-go/pkg/wire"
)

// simulator is the interactive command loop. It also plays the driver's
// transmit path: outgoing MLME records are rendered to the terminal.
type simulator struct {
	rl    *readline.Instance
	bss   *ap.BSS
	sched *timer.Manual
	start time.Time
}

func newSimulator(bssid wire.MacAddr) (*simulator, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("%s> ", bssid),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &simulator{rl: rl, start: time.Unix(0, 0)}, nil
}

func (s *simulator) attach(bss *ap.BSS, sched *timer.Manual) {
	s.bss = bss
	s.sched = sched
}

func (s *simulator) stdout() io.Writer {
	return s.rl.Stdout()
}

func (s *simulator) Close() {
	_ = s.rl.Close()
}

// run starts the interactive command loop.
func (s *simulator) run() {
	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "auth", "a":
			s.cmdAuth(args)

		case "assoc":
			s.cmdAssoc(args)

		case "eapol", "e":
			s.cmdEapol(args)

		case "conf":
			s.cmdConf(args)

		case "disassoc", "d":
			s.cmdDisassoc(args)

		case "advance", "adv":
			s.cmdAdvance(args)

		case "stations", "st":
			s.cmdStations()

		case "quit", "exit", "q":
			fmt.Fprintln(s.stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(s.stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *simulator) printHelp() {
	fmt.Fprintln(s.stdout(), `
Soft-AP Simulator Commands:
  Indications:
    auth <mac> [type]      - Authenticate indication (type: open, default open)
    assoc <mac> [rsn]      - Associate indication; "rsn" attaches the BSS's
                             RSN element, or pass hex for a custom one
    eapol <mac> [hex]      - EAPoL frame from the station (canned if omitted)
    conf <mac> [fail]      - EAPoL transmit confirmation from the driver
    disassoc <mac>         - Disassociate indication

  Time:
    advance <duration>     - Advance the clock (e.g. 1s, 300s, 5m)

  Inspection:
    stations               - List known stations and their AIDs

  General:
    help                   - Show this help
    quit                   - Exit simulator`)
}

func (s *simulator) parseAddr(args []string) (wire.MacAddr, bool) {
	if len(args) == 0 {
		fmt.Fprintln(s.stdout(), "Missing station address")
		return wire.MacAddr{}, false
	}
	addr, err := wire.ParseMacAddr(args[0])
	if err != nil {
		fmt.Fprintf(s.stdout(), "Bad station address: %v\n", err)
		return wire.MacAddr{}, false
	}
	return addr, true
}

func (s *simulator) cmdAuth(args []string) {
	addr, ok := s.parseAddr(args)
	if !ok {
		return
	}

	authType := wire.AuthTypeOpenSystem
	if len(args) > 1 && args[1] != "open" {
		// Anything other than open system is refused downstream; 0 is not
		// a defined algorithm.
		authType = wire.AuthenticationType(0)
	}
	s.bss.HandleAuthInd(addr, authType)
}

func (s *simulator) cmdAssoc(args []string) {
	addr, ok := s.parseAddr(args)
	if !ok {
		return
	}

	var rsne []byte
	if len(args) > 1 {
		if args[1] == "rsn" {
			rsne = []byte{0x30, 0x14, 0x01, 0x00}
		} else {
			decoded, err := hex.DecodeString(args[1])
			if err != nil {
				fmt.Fprintf(s.stdout(), "Bad RSN element hex: %v\n", err)
				return
			}
			rsne = decoded
		}
	}

	capabilities := wire.CapabilityInfo(0).WithEss(true)
	rates := []wire.SupportedRate{0x82, 0x84, 0x8b, 0x96}
	s.bss.HandleAssocInd(addr, capabilities, rates, rsne)
}

func (s *simulator) cmdEapol(args []string) {
	addr, ok := s.parseAddr(args)
	if !ok {
		return
	}

	frame := simKeyFrame(2)
	if len(args) > 1 {
		decoded, err := hex.DecodeString(args[1])
		if err != nil {
			fmt.Fprintf(s.stdout(), "Bad frame hex: %v\n", err)
			return
		}
		frame = decoded
	}
	s.bss.HandleEapolInd(addr, frame)
}

func (s *simulator) cmdConf(args []string) {
	addr, ok := s.parseAddr(args)
	if !ok {
		return
	}

	result := wire.EapolResultSuccess
	if len(args) > 1 && args[1] == "fail" {
		result = wire.EapolResultTransmissionFailure
	}
	s.bss.HandleEapolConf(addr, result)
}

func (s *simulator) cmdDisassoc(args []string) {
	addr, ok := s.parseAddr(args)
	if !ok {
		return
	}
	s.bss.HandleDisassocInd(addr)
}

func (s *simulator) cmdAdvance(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.stdout(), "Missing duration")
		return
	}
	d, err := time.ParseDuration(args[0])
	if err != nil {
		fmt.Fprintf(s.stdout(), "Bad duration: %v\n", err)
		return
	}
	s.sched.Advance(d, s.bss.TimerSink())
	fmt.Fprintf(s.stdout(), "Clock at T+%s\n", s.sched.Now().Sub(s.start))
}

func (s *simulator) cmdStations() {
	addrs := s.bss.Stations()
	if len(addrs) == 0 {
		fmt.Fprintln(s.stdout(), "No known stations")
		return
	}
	for _, addr := range addrs {
		if aid, associated := s.bss.Aid(addr); associated {
			fmt.Fprintf(s.stdout(), "  %s  associated aid=%d\n", addr, aid)
		} else {
			fmt.Fprintf(s.stdout(), "  %s  authenticated\n", addr)
		}
	}
}

// client.Sender implementation: the simulator renders what the driver
// would transmit.

func (s *simulator) SendAuthenticateResponse(peer wire.MacAddr, code wire.AuthenticateResultCode) {
	fmt.Fprintf(s.stdout(), "<- AuthenticateResponse peer=%s code=%s\n", peer, code)
}

func (s *simulator) SendAssociateResponse(peer wire.MacAddr, code wire.AssociateResultCode, aid wire.Aid, capabilities wire.CapabilityInfo, rates []wire.SupportedRate) {
	fmt.Fprintf(s.stdout(), "<- AssociateResponse peer=%s code=%s aid=%d privacy=%t rates=%d\n",
		peer, code, aid, capabilities.Privacy(), len(rates))
}

func (s *simulator) SendDeauthenticateRequest(peer wire.MacAddr, reason wire.ReasonCode) {
	fmt.Fprintf(s.stdout(), "<- DeauthenticateRequest peer=%s reason=%s\n", peer, reason)
}

func (s *simulator) SendEapolRequest(peer wire.MacAddr, frame []byte) {
	fmt.Fprintf(s.stdout(), "<- EapolRequest peer=%s len=%d\n", peer, len(frame))
}

func (s *simulator) SendKey(peer wire.MacAddr, key auth.Key) {
	fmt.Fprintf(s.stdout(), "<- SetKeysRequest peer=%s id=%d type=%s\n", peer, key.ID, key.Type)
}

func (s *simulator) SendSetControlledPort(peer wire.MacAddr, state wire.ControlledPortState) {
	fmt.Fprintf(s.stdout(), "<- SetControlledPortRequest peer=%s state=%s\n", peer, state)
}
