// Package gt06 implements a device-side client for the GT06 vehicle-tracker
// protocol.
//
// It dials a fleet-management server over TCP, logs in with a device IMEI,
// heart-beats on a fixed interval, reports GPS fixes and device status, and
// dispatches server-originated command frames to a registered callback. Failed
// connect attempts are retried a bounded number of times, after which the
// session arms a power-restart through an injected PowerRestarter; a dropped
// connection is not redialed automatically.
//
// # Quick Start
//
//	session, err := gt06.NewSession(gt06.NewTCPTransport("tracker.example.com:8090"),
//	    gt06.WithHeartbeatPeriod(3*time.Minute),
//	    gt06.WithLogger(gt06.NewStdLogger()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := session.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := session.Login(ctx, "0353413532150362"); err != nil {
//	    log.Fatal(err)
//	}
//
//	session.SetCallback(func(cmd gt06.Command) {
//	    fmt.Printf("server command %08X: %q\n", cmd.ServerFlag, cmd.Data)
//	})
//
//	err = session.ReportLocation(ctx, gt06.LocationFix{
//	    Time:      time.Now(),
//	    Latitude:  31.824845156501,
//	    Longitude: 117.24091089413,
//	    SpeedKMH:  120,
//	    Course:    126,
//	}, gt06.LbsCell{MCC: 460, LAC: 0x1234, CellID: 0xABCD}, false)
//
// # Supported frames
//
// The client sends login (0x01), heartbeat (0x13), location (0x12),
// location+status (0x16), and device-command-reply (0x15) frames, and
// accepts server-command (0x80) frames.
package gt06

// Version information for this client implementation.
const (
	// Version is the current library version.
	Version = "0.1.0"

	// ProtocolVersion names the GT06 protocol revision this client speaks.
	ProtocolVersion = "GT06"
)
