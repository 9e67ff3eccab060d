package urls

// External documentation linked from troubleshooting hints

// OpenCageSignUp is where users create a reverse-geocoding API key.
const OpenCageSignUp = "https://opencagedata.com/users/sign_up"

// OpenCageAPI documents the geocoding API, including rate limits and
// response codes.
const OpenCageAPI = "https://opencagedata.com/api"

// OpenCageStatus reports outages of the geocoding service.
const OpenCageStatus = "https://status.opencagedata.com"

// GPSD is the gpsd project page, covering daemon setup and the JSON
// protocol used for position reports.
const GPSD = "https://gpsd.gitlab.io/gpsd/"
