package service

import (
	"fmt"
	"log"
	"time"

	"onboarding-backend/internal/apps/otp/models"
	"onboarding-backend/internal/apps/otp/repository"
)

const (
	// maxDeliveryAttempts counts the synchronous attempt plus retries.
	maxDeliveryAttempts = 5
	dispatchBatchSize   = 50
)

// Dispatcher retries SMS delivery for OTP records left in the pending state
// by a failed synchronous dispatch. Records that exhaust their attempts are
// marked failed and never retried again.
type Dispatcher struct {
	repo       repository.OTPRepository
	provider   SMSProvider
	fromNumber string
	interval   time.Duration
	stop       chan struct{}
	done       chan struct{}
}

// NewDispatcher creates a dispatcher scanning for pending deliveries at the
// given interval
func NewDispatcher(repo repository.OTPRepository, provider SMSProvider, fromNumber string, interval time.Duration) *Dispatcher {
	return &Dispatcher{
		repo:       repo,
		provider:   provider,
		fromNumber: fromNumber,
		interval:   interval,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start launches the background retry loop
func (d *Dispatcher) Start() {
	go d.loop()
}

// Stop terminates the retry loop and waits for it to finish
func (d *Dispatcher) Stop() {
	close(d.stop)
	<-d.done
}

func (d *Dispatcher) loop() {
	defer close(d.done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			d.flush()
		}
	}
}

// flush attempts delivery for one batch of pending records
func (d *Dispatcher) flush() {
	pending, err := d.repo.FindPendingDeliveries(maxDeliveryAttempts, dispatchBatchSize)
	if err != nil {
		log.Printf("[OTP Dispatcher] Failed to load pending deliveries: %v", err)
		return
	}

	for _, otp := range pending {
		attempts := otp.DeliveryAttempts + 1
		body := fmt.Sprintf("Your OTP is %s", otp.Otp)

		if err := d.provider.Send(body, d.fromNumber, otp.PhoneNumber); err != nil {
			status := models.DeliveryPending
			if attempts >= maxDeliveryAttempts {
				status = models.DeliveryFailed
				log.Printf("[OTP Dispatcher] Giving up on %s after %d attempts: %v", otp.ID, attempts, err)
			} else {
				log.Printf("[OTP Dispatcher] Delivery attempt %d for %s failed: %v", attempts, otp.ID, err)
			}
			if markErr := d.repo.MarkDelivery(otp.ID, status, attempts); markErr != nil {
				log.Printf("[OTP Dispatcher] Failed to record attempt for %s: %v", otp.ID, markErr)
			}
			continue
		}

		if err := d.repo.MarkDelivery(otp.ID, models.DeliverySent, attempts); err != nil {
			log.Printf("[OTP Dispatcher] Failed to mark %s as sent: %v", otp.ID, err)
		}
	}
}
