package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"xdao.co/flexhash/service/grpchash"
)

func main() {
	fs := flag.NewFlagSet("xdao-hashgrpcd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7778", "listen address")

	_ = fs.Parse(os.Args[1:])

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpchash.RegisterHasherServer(s, &grpchash.Server{})

	fmt.Fprintf(os.Stderr, "xdao-hashgrpcd listening on %s\n", lis.Addr().String())
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
