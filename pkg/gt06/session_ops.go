package gt06

import "context"

// Login sends a 0x01 login frame carrying imei and waits for the
// server's acknowledgement. On success the session transitions to
// LoggedIn and arms the heart-beat timer.
func (s *Session) Login(ctx context.Context, imei string) error {
	if s.State() != Connected {
		return ErrNotConnected
	}
	payload, err := buildLoginPayload(imei)
	if err != nil {
		return err
	}
	if _, err := s.sendAndWait(protoLogin, protoLogin, payload); err != nil {
		return err
	}
	s.setState(LoggedIn)
	s.armHeartbeat()
	s.opts.Logger.Infof("logged in as %s", imei)
	return nil
}

// ReportLocation sends a GPS fix and serving-cell context. When
// includeDeviceStatus is true it sends a 0x16 frame and waits for its
// ack; otherwise it sends a 0x12 frame and returns as soon as the
// write succeeds, without waiting for an ack.
func (s *Session) ReportLocation(ctx context.Context, fix LocationFix, cell LbsCell, includeDeviceStatus bool) error {
	if s.State() != LoggedIn {
		return ErrNotConnected
	}

	if !includeDeviceStatus {
		payload, err := buildLocationReportPayload(fix, cell)
		if err != nil {
			return err
		}
		_, err = s.send(protoLocation, payload)
		return err
	}

	status := *s.status.Load()
	payload, err := buildLocationStatusPayload(fix, cell, status)
	if err != nil {
		return err
	}
	_, err = s.sendAndWait(protoLocationStatus, protoLocationStatus, payload)
	return err
}

// ReportDeviceStatus sends a 0x13 heart-beat frame built from the
// session's current DeviceStatus and waits for its ack.
func (s *Session) ReportDeviceStatus() error {
	if s.State() != LoggedIn {
		return ErrNotConnected
	}
	status := *s.status.Load()
	payload, err := buildHeartbeatPayload(status)
	if err != nil {
		return err
	}
	_, err = s.sendAndWait(protoHeartbeat, protoHeartbeat, payload)
	return err
}

// ReportDeviceCmd sends a 0x15 device-command-response frame echoing
// serverFlag and reply. No ack is awaited; the server has no response
// defined for this frame kind.
func (s *Session) ReportDeviceCmd(serverFlag uint32, reply string) error {
	if s.State() != LoggedIn {
		return ErrNotConnected
	}
	payload := buildDeviceCmdReplyPayload(serverFlag, reply)
	_, err := s.send(protoDeviceCmdReply, payload)
	return err
}

// SetDeviceStatus replaces the status reported by subsequent
// heart-beats and status-bearing location reports. Safe to call
// concurrently with any other Session method.
func (s *Session) SetDeviceStatus(status DeviceStatus) {
	s.status.Store(&status)
}

// SetCallback registers the function invoked, each on its own
// goroutine, for every inbound server command frame (0x80). Passing
// nil clears any previously registered callback.
func (s *Session) SetCallback(cb CommandCallback) {
	if cb == nil {
		s.callback.Store(nil)
		return
	}
	s.callback.Store(&cb)
}
