package grpchash

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/flexhash/digest"
)

// Client calls a remote Hasher service.
type Client struct {
	cc     *grpc.ClientConn
	client HasherClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewHasherClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Hash64 returns the remote 64-bit digest of data.
func (c *Client) Hash64(data []byte) (uint64, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Hash64(ctx, wrapperspb.Bytes(data))
	if err != nil {
		return 0, mapRPC(err)
	}
	return reply.GetValue(), nil
}

// Hash128 returns the remote 128-bit digest of data.
func (c *Client) Hash128(data []byte) (digest.Digest128, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Hash128(ctx, wrapperspb.Bytes(data))
	if err != nil {
		return digest.Digest128{}, mapRPC(err)
	}
	return digest.Parse(reply.GetValue())
}

// Cutoff returns the remote proportion cutoff for p.
func (c *Client) Cutoff(p float64) (uint64, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Cutoff(ctx, wrapperspb.Double(p))
	if err != nil {
		return 0, mapRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
