package legacy

// ReadParticle decodes one particle line: a pure (keyword, value...)
// record.
func ReadParticle(line string, particles Table) (*Record, error) {
	return ReadLine(line, particles)
}

// WriteParticle renders a particle record back into its line form.
func WriteParticle(particle *Record) (string, error) {
	return WriteLine(particle)
}
