// Package commands implements the pacenote CLI.
//
//	pacenote serve
//	    Serve the editor front and JSON API on --listen.
//
//	pacenote record [--udp ADDR] [--forward ADDR] [--offset N]
//	    Receive game telemetry. Stages without pacenotes are recorded into
//	    telemetry.log; stages with pacenotes have their calls printed.
//
//	pacenote save --location NN --stage NN REGIONS.json
//	    Post a regions array (file or "-" for stdin) to --api.
//
//	pacenote load --location NN --stage NN
//	    Run the edit-page loader against --api and print the result as JSON.
//
//	pacenote locations
//	    List recorded locations and stages known to --api.
//
// Flags override the PACENOTE_* environment variables read by app.LoadConfig.
package commands
