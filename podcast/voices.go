package podcast

// Voices is the fixed catalog of synthesis voices accepted by the TTS service
var Voices = []string{
	"Wise_Woman",
	"Friendly_Person",
	"Inspirational_girl",
	"Deep_Voice_Man",
	"Calm_Woman",
	"Casual_Guy",
	"Lively_Girl",
	"Patient_Man",
	"Young_Knight",
	"Determined_Man",
	"Lovely_Girl",
	"Decent_Boy",
	"Imposing_Manner",
	"Elegant_Man",
	"Abbess",
	"Sweet_Girl_2",
	"Exuberant_Girl",
}

// ValidVoice reports whether name is in the voice catalog
func ValidVoice(name string) bool {
	for _, v := range Voices {
		if v == name {
			return true
		}
	}
	return false
}

// BuildVoiceMap assigns a voice to every distinct speaker in the script.
//
// In monologue mode every speaker gets the host voice. In dialogue mode the
// distinct speakers are enumerated from an unordered set and indexed: the
// first gets the host voice, the second the guest voice, and any extras
// alternate (even index host, odd index guest). The set is unordered, so
// which dialogue speaker lands on the host voice is not tied to narrative
// role; callers must not depend on a particular speaker-to-voice pairing,
// only on the set of voices used.
func BuildVoiceMap(script Script, hostVoice, guestVoice string, monologue bool) VoiceMap {
	voiceMap := make(VoiceMap)
	speakers := script.Speakers()

	if monologue {
		for speaker := range speakers {
			voiceMap[speaker] = hostVoice
		}
		return voiceMap
	}

	speakerList := make([]string, 0, len(speakers))
	for speaker := range speakers { // map iteration order is unspecified
		speakerList = append(speakerList, speaker)
	}

	for i, speaker := range speakerList {
		switch {
		case i == 0:
			voiceMap[speaker] = hostVoice
		case i == 1:
			voiceMap[speaker] = guestVoice
		case i%2 == 0:
			voiceMap[speaker] = hostVoice
		default:
			voiceMap[speaker] = guestVoice
		}
	}

	return voiceMap
}
