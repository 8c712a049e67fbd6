package regbus

// SetLED drives the indicator LED. Bit 7 of RegGPIODirection selects the pin
// as an output and bit 7 of RegGPIOOutput is the level. Turning the LED off
// also releases the pin.
func (b *Bus) SetLED(on bool) error {
	logger.Debugf("[%s] led status: %t", b.session, on)

	b.Update(RegGPIODirection, 0, ledMask)
	if on {
		b.Update(RegGPIOOutput, 0, ledMask)
	} else {
		b.Update(RegGPIOOutput, ledMask, 0)
		b.Update(RegGPIODirection, ledMask, 0)
	}
	return b.session.Err()
}
