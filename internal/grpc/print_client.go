package grpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	printerv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/printer/v1"
)

// PrintClient is the peers' client to the print server. It implements
// mutex.Printer. The timeout must cover the server's simulated print delay.
type PrintClient struct {
	conn    *grpc.ClientConn
	client  printerv1.PrintServiceClient
	timeout time.Duration
}

// NewPrintClient dials the print server at addr.
func NewPrintClient(addr string, timeout time.Duration) (*PrintClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial print server at %s: %w", addr, err)
	}
	return &PrintClient{
		conn:    conn,
		client:  printerv1.NewPrintServiceClient(conn),
		timeout: timeout,
	}, nil
}

// PrintDocument submits one job to the print server.
func (c *PrintClient) PrintDocument(ctx context.Context, req *printerv1.PrintJobRequest) (*printerv1.PrintJobResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.PrintDocument(ctx, req)
}

// ListJobs fetches the print history from the server.
func (c *PrintClient) ListJobs(ctx context.Context, limit int32) (*printerv1.ListJobsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.ListJobs(ctx, &printerv1.ListJobsRequest{Limit: limit})
}

// Close closes the connection to the print server.
func (c *PrintClient) Close() error {
	return c.conn.Close()
}
