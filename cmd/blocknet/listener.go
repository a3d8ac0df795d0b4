package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/blocknet/blocknet"
)

// logListener writes every topology event to a zap logger.
type logListener struct {
	log *zap.Logger
}

func (l logListener) NetworkAdded(net blocknet.Network) error {
	l.log.Info("network added", zap.String("network", fmt.Sprint(net)))
	return nil
}

func (l logListener) NetworkRemoved(net blocknet.Network) error {
	l.log.Info("network removed", zap.String("network", fmt.Sprint(net)))
	return nil
}

func (l logListener) NodeAdded(net blocknet.Network, n blocknet.Node) error {
	l.log.Debug("node added", zap.String("network", fmt.Sprint(net)), zap.String("node", n.Key()))
	return nil
}

func (l logListener) NodeRemoved(net blocknet.Network, n blocknet.Node) error {
	l.log.Debug("node removed", zap.String("network", fmt.Sprint(net)), zap.String("node", n.Key()))
	return nil
}
