// Package docs holds the OpenAPI description served at /swagger/.
//
// Regenerate with: swag init -g main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Report that the API is running",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.HealthResponse"}}}
            }
        },
        "/temples/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["temples"],
                "summary": "List temples",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Temple"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["temples"],
                "summary": "Create a temple",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.CreateTempleRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Temple"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Err"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Err"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Err"}}
                }
            }
        },
        "/temples/{templeID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["temples"],
                "summary": "Get a temple",
                "parameters": [{"type": "integer", "name": "templeID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Temple"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Err"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["temples"],
                "summary": "Delete a temple",
                "parameters": [{"type": "integer", "name": "templeID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Err"}}
                }
            }
        },
        "/slots/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["slots"],
                "summary": "List slots of a temple on a date",
                "parameters": [
                    {"type": "integer", "name": "templeId", "in": "query", "required": true},
                    {"type": "string", "name": "date", "in": "query", "required": true, "description": "YYYY-MM-DD"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Slot"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["slots"],
                "summary": "Create a slot",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.CreateSlotRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Slot"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Err"}}
                }
            }
        },
        "/slots/{slotID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["slots"],
                "summary": "Get a slot",
                "parameters": [{"type": "integer", "name": "slotID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Slot"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Err"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["slots"],
                "summary": "Update a slot",
                "parameters": [
                    {"type": "integer", "name": "slotID", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.UpdateSlotRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Slot"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Err"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Err"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["slots"],
                "summary": "Delete a slot",
                "parameters": [{"type": "integer", "name": "slotID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}}}
            }
        },
        "/slots/live/{templeID}": {
            "get": {
                "tags": ["slots"],
                "summary": "Subscribe to live slot availability over a websocket",
                "parameters": [{"type": "integer", "name": "templeID", "in": "path", "required": true}],
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        },
        "/bookings/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List all bookings",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Booking"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Create an online booking",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.CreateBookingRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Booking"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Err"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Err"}}
                }
            }
        },
        "/bookings/kiosk/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Create a walk-in booking at a kiosk",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.KioskBookingRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Booking"}}}
            }
        },
        "/bookings/{bookingID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Get a booking",
                "parameters": [{"type": "integer", "name": "bookingID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Booking"}}}
            },
            "delete": {
                "tags": ["bookings"],
                "summary": "Cancel a booking",
                "parameters": [{"type": "integer", "name": "bookingID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}}}
            }
        },
        "/bookings/user/{userID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List the bookings of a user",
                "parameters": [{"type": "integer", "name": "userID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Booking"}}}}
            }
        },
        "/participant/add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["participants"],
                "summary": "Add a participant to a booking",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.AddParticipantRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Participant"}}}
            }
        },
        "/participant/{participantID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["participants"],
                "summary": "Get a participant",
                "parameters": [{"type": "integer", "name": "participantID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Participant"}}}
            },
            "delete": {
                "tags": ["participants"],
                "summary": "Remove a participant",
                "parameters": [{"type": "integer", "name": "participantID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}}}
            }
        },
        "/participant/booking/{bookingID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["participants"],
                "summary": "List the participants of a booking",
                "parameters": [{"type": "integer", "name": "bookingID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Participant"}}}}
            }
        },
        "/payment/create": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Open a pending payment for a booking",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.CreatePaymentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Payment"}}}
            }
        },
        "/payment/webhook": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Receive a payment gateway notification",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.WebhookRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.WebhookResponse"}}}
            }
        },
        "/payment/{paymentID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Get a payment",
                "parameters": [{"type": "integer", "name": "paymentID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Payment"}}}
            }
        },
        "/users/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.RegisterUserRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}}}
            }
        },
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Log a user in",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.LoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.LoginResponse"}}}
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get the signed-in user's profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update the signed-in user's profile",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.UpdateProfileRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete the signed-in user with their bookings",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}}}
            }
        },
        "/parking/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "List parking zones",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ParkingZone"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Create a parking zone for a temple",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.CreateParkingZoneRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.ParkingZone"}}}
            }
        },
        "/parking/temple/{templeID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "List the parking zones of a temple",
                "parameters": [{"type": "integer", "name": "templeID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ParkingZone"}}}}
            }
        },
        "/parking/{parkingID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Get a parking zone",
                "parameters": [{"type": "integer", "name": "parkingID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ParkingZone"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Update a parking zone",
                "parameters": [
                    {"type": "integer", "name": "parkingID", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.UpdateParkingZoneRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ParkingZone"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Delete a parking zone with its slots",
                "parameters": [{"type": "integer", "name": "parkingID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}}}
            }
        },
        "/parking-slots/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["parking-slots"],
                "summary": "List parking slots",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ParkingSlot"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parking-slots"],
                "summary": "Create a parking slot in a zone",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.CreateParkingSlotRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.ParkingSlot"}}}
            }
        },
        "/parking-slots/parking/{parkingID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["parking-slots"],
                "summary": "List the slots of a parking zone",
                "parameters": [{"type": "integer", "name": "parkingID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ParkingSlot"}}}}
            }
        },
        "/parking-slots/{slotID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["parking-slots"],
                "summary": "Get a parking slot",
                "parameters": [{"type": "integer", "name": "slotID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ParkingSlot"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parking-slots"],
                "summary": "Update a parking slot",
                "parameters": [
                    {"type": "integer", "name": "slotID", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.UpdateParkingSlotRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ParkingSlot"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["parking-slots"],
                "summary": "Delete a parking slot",
                "parameters": [{"type": "integer", "name": "slotID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}}}
            }
        },
        "/users/{userID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [{"type": "integer", "name": "userID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}}
            }
        },
        "/admin/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Register an administrator",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.RegisterAdminRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Admin"}}}
            }
        },
        "/admin/auth/login": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Log an administrator in",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.AdminLoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.AdminTokenResponse"}}}
            }
        },
        "/admin/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get the logged in administrator",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Admin"}}}
            }
        },
        "/oauth2/authorization/google": {
            "get": {
                "tags": ["oauth"],
                "summary": "Start a Google sign in",
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/login/oauth2/code/google": {
            "get": {
                "tags": ["oauth"],
                "summary": "Finish a Google sign in",
                "parameters": [
                    {"type": "string", "name": "code", "in": "query", "required": true},
                    {"type": "string", "name": "state", "in": "query", "required": true}
                ],
                "responses": {"302": {"description": "Found"}}
            }
        }
    },
    "definitions": {
        "domain.ParkingZone": {
            "type": "object",
            "properties": {
                "parkingId": {
                    "type": "integer"
                },
                "templeId": {
                    "type": "integer"
                },
                "totalSlots": {
                    "type": "integer"
                },
                "freeSlots": {
                    "type": "integer"
                },
                "filledSlots": {
                    "type": "integer"
                },
                "twoWheeler": {
                    "type": "integer"
                },
                "fourWheeler": {
                    "type": "integer"
                },
                "cctvCount": {
                    "type": "integer"
                },
                "status": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "domain.ParkingSlot": {
            "type": "object",
            "properties": {
                "slotId": {
                    "type": "integer"
                },
                "parkingId": {
                    "type": "integer"
                },
                "slotAvailability": {
                    "type": "boolean"
                },
                "status": {
                    "type": "boolean"
                },
                "slotCapacity": {
                    "type": "integer"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "request.CreateParkingZoneRequest": {
            "type": "object",
            "properties": {
                "templeId": {
                    "type": "integer"
                },
                "totalSlots": {
                    "type": "integer"
                },
                "freeSlots": {
                    "type": "integer"
                },
                "filledSlots": {
                    "type": "integer"
                },
                "twoWheeler": {
                    "type": "integer"
                },
                "fourWheeler": {
                    "type": "integer"
                },
                "cctvCount": {
                    "type": "integer"
                },
                "status": {
                    "type": "boolean"
                }
            }
        },
        "request.UpdateParkingZoneRequest": {
            "type": "object",
            "properties": {
                "totalSlots": {
                    "type": "integer"
                },
                "freeSlots": {
                    "type": "integer"
                },
                "filledSlots": {
                    "type": "integer"
                },
                "twoWheeler": {
                    "type": "integer"
                },
                "fourWheeler": {
                    "type": "integer"
                },
                "cctvCount": {
                    "type": "integer"
                },
                "status": {
                    "type": "boolean"
                }
            }
        },
        "request.CreateParkingSlotRequest": {
            "type": "object",
            "properties": {
                "parkingId": {
                    "type": "integer"
                },
                "slotAvailability": {
                    "type": "boolean"
                },
                "status": {
                    "type": "boolean"
                },
                "slotCapacity": {
                    "type": "integer"
                }
            }
        },
        "request.UpdateParkingSlotRequest": {
            "type": "object",
            "properties": {
                "parkingId": {
                    "type": "integer"
                },
                "slotAvailability": {
                    "type": "boolean"
                },
                "status": {
                    "type": "boolean"
                },
                "slotCapacity": {
                    "type": "integer"
                }
            }
        },
        "request.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "mobileNumber": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "gender": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "profilePhoto": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "domain.Temple": {
            "type": "object",
            "properties": {
                "templeId": {
                    "type": "integer"
                },
                "templeName": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "domain.Slot": {
            "type": "object",
            "properties": {
                "slotId": {
                    "type": "integer"
                },
                "templeId": {
                    "type": "integer"
                },
                "date": {
                    "type": "string"
                },
                "startTime": {
                    "type": "string"
                },
                "endTime": {
                    "type": "string"
                },
                "capacity": {
                    "type": "integer"
                },
                "reservedOfflineTickets": {
                    "type": "integer"
                },
                "onlineTickets": {
                    "type": "integer"
                },
                "remaining": {
                    "type": "integer"
                },
                "slotNumber": {
                    "type": "integer"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "domain.Participant": {
            "type": "object",
            "properties": {
                "participantId": {
                    "type": "integer"
                },
                "bookingId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "gender": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "photoIdType": {
                    "type": "string"
                },
                "photoIdNumber": {
                    "type": "string"
                }
            }
        },
        "domain.Booking": {
            "type": "object",
            "properties": {
                "bookingId": {
                    "type": "integer"
                },
                "userId": {
                    "type": "integer"
                },
                "templeId": {
                    "type": "integer"
                },
                "slotId": {
                    "type": "integer"
                },
                "bookingType": {
                    "type": "string",
                    "enum": [
                        "ONLINE",
                        "OFFLINE"
                    ]
                },
                "special": {
                    "type": "boolean"
                },
                "bookingDate": {
                    "type": "string"
                },
                "mobileNumber": {
                    "type": "string"
                },
                "numberOfParticipants": {
                    "type": "integer"
                },
                "seats": {
                    "type": "integer"
                },
                "participants": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Participant"
                    }
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "domain.Payment": {
            "type": "object",
            "properties": {
                "paymentId": {
                    "type": "integer"
                },
                "bookingId": {
                    "type": "integer"
                },
                "amount": {
                    "type": "number"
                },
                "paymentMethod": {
                    "type": "string"
                },
                "transactionId": {
                    "type": "string"
                },
                "paymentDate": {
                    "type": "string"
                },
                "paymentStatus": {
                    "type": "string",
                    "enum": [
                        "PENDING",
                        "CONFIRMED",
                        "CANCELLED"
                    ]
                }
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "userId": {
                    "type": "integer"
                },
                "userName": {
                    "type": "string"
                },
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "mobileNumber": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "gender": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "profilePhoto": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "domain.Admin": {
            "type": "object",
            "properties": {
                "adminId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "request.CreateTempleRequest": {
            "type": "object",
            "properties": {
                "templeName": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                }
            }
        },
        "request.CreateSlotRequest": {
            "type": "object",
            "properties": {
                "templeId": {
                    "type": "integer"
                },
                "date": {
                    "type": "string"
                },
                "startTime": {
                    "type": "string"
                },
                "endTime": {
                    "type": "string"
                },
                "capacity": {
                    "type": "integer"
                },
                "reservedOfflineTickets": {
                    "type": "integer"
                },
                "remaining": {
                    "type": "integer"
                }
            }
        },
        "request.UpdateSlotRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "startTime": {
                    "type": "string"
                },
                "endTime": {
                    "type": "string"
                },
                "capacity": {
                    "type": "integer"
                },
                "reservedOfflineTickets": {
                    "type": "integer"
                },
                "remaining": {
                    "type": "integer"
                }
            }
        },
        "request.BookingParticipantFields": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "gender": {
                    "type": "string"
                },
                "participant_by_category": {
                    "type": "string"
                },
                "photoIdType": {
                    "type": "string"
                },
                "photoIdNumber": {
                    "type": "string"
                }
            }
        },
        "request.CreateBookingRequest": {
            "type": "object",
            "properties": {
                "userId": {
                    "type": "integer"
                },
                "templeId": {
                    "type": "integer"
                },
                "slotId": {
                    "type": "integer"
                },
                "bookingDate": {
                    "type": "string"
                },
                "special": {
                    "type": "boolean"
                },
                "participants": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/request.BookingParticipantFields"
                    }
                }
            }
        },
        "request.KioskBookingRequest": {
            "type": "object",
            "properties": {
                "templeId": {
                    "type": "integer"
                },
                "slotId": {
                    "type": "integer"
                },
                "mobileNumber": {
                    "type": "string"
                },
                "numberOfParticipants": {
                    "type": "integer"
                },
                "bookingDate": {
                    "type": "string"
                },
                "special": {
                    "type": "boolean"
                }
            }
        },
        "request.AddParticipantRequest": {
            "type": "object",
            "properties": {
                "bookingId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "gender": {
                    "type": "string"
                },
                "participant_by_category": {
                    "type": "string"
                },
                "photoIdType": {
                    "type": "string"
                },
                "photoIdNumber": {
                    "type": "string"
                }
            }
        },
        "request.CreatePaymentRequest": {
            "type": "object",
            "properties": {
                "bookingId": {
                    "type": "integer"
                },
                "amount": {
                    "type": "number"
                },
                "paymentMethod": {
                    "type": "string"
                }
            }
        },
        "request.WebhookRequest": {
            "type": "object",
            "properties": {
                "our_payment_id": {
                    "type": "integer"
                },
                "gateway_txn_id": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "request.RegisterUserRequest": {
            "type": "object",
            "properties": {
                "userName": {
                    "type": "string"
                },
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "mobileNumber": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "gender": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "profilePhoto": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "request.LoginRequest": {
            "type": "object",
            "properties": {
                "identifier": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "request.RegisterAdminRequest": {
            "type": "object",
            "properties": {
                "adminName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "request.AdminLoginRequest": {
            "type": "object",
            "properties": {
                "userName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "response.Err": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "integer"
                },
                "error": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "response.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "response.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "response.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/domain.User"
                }
            }
        },
        "response.AdminTokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                }
            }
        },
        "response.WebhookResponse": {
            "type": "object",
            "properties": {
                "ok": {
                    "type": "boolean"
                },
                "paymentStatus": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer token",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "DHARMA temple booking API",
	Description:      "Temples, visit slots, bookings and payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
